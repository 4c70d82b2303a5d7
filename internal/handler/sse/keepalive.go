package sse

import (
	"log/slog"
	"sync"
	"time"
)

// Pinger is the part of Writer the keep-alive loop needs.
type Pinger interface {
	WriteKeepAlive() error
}

// TickerKeepAlive sends an SSE comment every interval so that proxies do not
// drop a quiet session stream.
type TickerKeepAlive struct {
	interval time.Duration
	quit     chan struct{}
	once     sync.Once
}

func NewTickerKeepAlive(interval time.Duration) *TickerKeepAlive {
	if interval <= 0 {
		interval = DefaultConfig().KeepAliveInterval
	}
	return &TickerKeepAlive{
		interval: interval,
		quit:     make(chan struct{}),
	}
}

// Start launches the ping loop. The returned channel is closed when the loop
// exits, either after Stop or after the first failed ping.
func (k *TickerKeepAlive) Start(p Pinger, logger *slog.Logger) <-chan struct{} {
	exited := make(chan struct{})
	go k.loop(p, logger, exited)
	return exited
}

func (k *TickerKeepAlive) loop(p Pinger, logger *slog.Logger, exited chan<- struct{}) {
	defer close(exited)

	t := time.NewTicker(k.interval)
	defer t.Stop()

	for {
		select {
		case <-k.quit:
			return
		case <-t.C:
		}
		if err := p.WriteKeepAlive(); err != nil {
			logger.Debug("keep-alive ping failed", "error", err)
			return
		}
	}
}

// Stop ends the loop. Calling it more than once is harmless.
func (k *TickerKeepAlive) Stop() {
	k.once.Do(func() { close(k.quit) })
}
