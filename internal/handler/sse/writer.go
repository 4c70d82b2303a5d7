package sse

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
)

// Writer writes SSE frames for one client. The keep-alive goroutine and the
// event loop share it, so every frame is written and flushed under a lock.
type Writer struct {
	mu        sync.Mutex
	w         http.ResponseWriter
	flusher   http.Flusher
	sessionID string
	clientID  string
}

// NewWriter creates a writer for an already-established stream.
func NewWriter(w http.ResponseWriter, flusher http.Flusher, sessionID, clientID string) *Writer {
	return &Writer{
		w:         w,
		flusher:   flusher,
		sessionID: sessionID,
		clientID:  clientID,
	}
}

// WriteHeaders sets the SSE response headers and flushes them.
func WriteHeaders(w http.ResponseWriter, flusher http.Flusher) {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // Disable nginx buffering
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
}

// WriteEvent writes one event. id may be empty. Multi-line data is split into
// several data: lines as the SSE format requires.
func (s *Writer) WriteEvent(event, id string, data []byte) error {
	var frame bytes.Buffer
	if id != "" {
		fmt.Fprintf(&frame, "id: %s\n", id)
	}
	fmt.Fprintf(&frame, "event: %s\n", event)
	for _, line := range bytes.Split(data, []byte("\n")) {
		frame.WriteString("data: ")
		frame.Write(line)
		frame.WriteByte('\n')
	}
	frame.WriteByte('\n')

	return s.write(frame.Bytes())
}

// WriteKeepAlive writes an SSE comment (: keepalive\n\n) and flushes.
// Lines starting with : are ignored by clients.
func (s *Writer) WriteKeepAlive() error {
	return s.write([]byte(": keepalive\n\n"))
}

func (s *Writer) write(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(frame); err != nil {
		return fmt.Errorf("write to client %s of session %s: %w", s.clientID, s.sessionID, err)
	}
	s.flusher.Flush()
	return nil
}
