package format

import (
	"context"
	"time"

	model "datavisor/internal/domain/models/format"
)

// SessionService keeps live editor sessions: edits are debounced and only the
// classification of the most recent edit is ever published.
type SessionService interface {
	// Create opens a new session.
	Create(ctx context.Context, req *CreateSessionRequest) (*SessionInfo, error)

	// Submit records an edit and schedules its classification.
	Submit(ctx context.Context, sessionID string, req *TextRequest) error

	// Latest returns the most recently published snapshot.
	Latest(ctx context.Context, sessionID string) (*Snapshot, error)

	// Subscribe streams future snapshots until cancel is called or the
	// session ends. The current snapshot, if any, is delivered first.
	Subscribe(ctx context.Context, sessionID string) (events <-chan Snapshot, cancel func(), err error)

	// Delete closes a session and its subscriptions.
	Delete(ctx context.Context, sessionID string) error
}

// CreateSessionRequest configures a new session.
type CreateSessionRequest struct {
	View string `json:"view,omitempty"` // Pinned tab; empty follows the detected kind
}

// SessionInfo describes an open session.
type SessionInfo struct {
	ID         string    `json:"id"`
	View       string    `json:"view,omitempty"`
	DebounceMS int64     `json:"debounce_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Snapshot is one published classification of a session.
type Snapshot struct {
	SessionID string         `json:"session_id"`
	Seq       uint64         `json:"seq"`
	Result    model.Result   `json:"result"`
	Rendered  model.Rendered `json:"rendered"`
	At        time.Time      `json:"at"`
}
