package session

import (
	"context"
	"time"
)

// minSweepInterval keeps a tiny TTL from turning the janitor into a busy loop.
const minSweepInterval = time.Second

// Run expires idle sessions until ctx is cancelled. A session with an open
// stream is never idle.
func (s *Service) Run(ctx context.Context) {
	if s.cfg.TTL <= 0 {
		return
	}
	interval := max(s.cfg.TTL/2, minSweepInterval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("session janitor started",
		"ttl", s.cfg.TTL.String(),
		"interval", interval.String(),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired idle sessions", "count", n, "remaining", s.Len())
			}
		}
	}
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Service) Sweep() int {
	cutoff := s.now().Add(-s.cfg.TTL)

	s.mu.Lock()
	var expired []*session
	for id, sess := range s.sessions {
		if sess.idleSince(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
		s.logger.Debug("session expired", "session_id", sess.id)
	}
	return len(expired)
}

func (sess *session) idleSince(cutoff time.Time) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.subscribers) == 0 && sess.lastActive.Before(cutoff)
}
