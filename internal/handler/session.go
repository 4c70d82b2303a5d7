package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/handler/sse"
	"datavisor/internal/httputil"
)

// SessionHandler serves live editing sessions
type SessionHandler struct {
	sessions  formatSvc.SessionService
	sseConfig *sse.Config
	logger    *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions formatSvc.SessionService, sseConfig *sse.Config, logger *slog.Logger) *SessionHandler {
	if sseConfig == nil {
		sseConfig = sse.DefaultConfig()
	}
	return &SessionHandler{
		sessions:  sessions,
		sseConfig: sseConfig,
		logger:    logger,
	}
}

// CreateSession opens a session. The body is optional.
// POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req formatSvc.CreateSessionRequest
	if r.ContentLength != 0 {
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			handleError(w, err)
			return
		}
	}

	info, err := h.sessions.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, info)
}

// SubmitInput records an edit. The classification is published after the
// debounce delay, so the response only acknowledges receipt.
// PUT /api/sessions/{id}/input
func (h *SessionHandler) SubmitInput(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id", "Session ID")
	if !ok {
		return
	}

	var req formatSvc.TextRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := h.sessions.Submit(r.Context(), id, &req); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusAccepted, map[string]string{
		"session_id": id,
		"status":     "accepted",
	})
}

// GetSession returns the latest snapshot.
// GET /api/sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id", "Session ID")
	if !ok {
		return
	}

	snap, err := h.sessions.Latest(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, snap)
}

// DeleteSession closes a session and its streams.
// DELETE /api/sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id", "Session ID")
	if !ok {
		return
	}

	if err := h.sessions.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StreamSession pushes every published snapshot as a "result" event. The
// stream ends with a "closed" event when the session is deleted or expires.
// GET /api/sessions/{id}/stream
func (h *SessionHandler) StreamSession(w http.ResponseWriter, r *http.Request) {
	id, ok := PathParam(w, r, "id", "Session ID")
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		httputil.RespondError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	events, cancel, err := h.sessions.Subscribe(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	defer cancel()

	clientID := uuid.New().String()
	logger := h.logger.With("session_id", id, "client_id", clientID)

	sse.WriteHeaders(w, flusher)
	writer := sse.NewWriter(w, flusher, id, clientID)

	keepAlive := sse.NewTickerKeepAlive(h.sseConfig.KeepAliveInterval)
	keepAliveDone := keepAlive.Start(writer, logger)
	defer func() {
		keepAlive.Stop()
		<-keepAliveDone // no writes after the handler returns
	}()

	logger.Debug("SSE stream established")
	defer logger.Debug("SSE stream ended")

	for {
		select {
		case <-r.Context().Done():
			return

		case <-keepAliveDone:
			// Keep-alive write failed: the client is gone.
			return

		case snap, open := <-events:
			if !open {
				payload, _ := json.Marshal(map[string]string{"session_id": id})
				_ = writer.WriteEvent("closed", "", payload)
				return
			}

			payload, err := json.Marshal(snap)
			if err != nil {
				logger.Error("failed to encode snapshot", "seq", snap.Seq, "error", err)
				continue
			}

			var eventID string
			if h.sseConfig.EventIDs {
				eventID = strconv.FormatUint(snap.Seq, 10)
			}
			if err := writer.WriteEvent("result", eventID, payload); err != nil {
				logger.Info("client disconnected during event write", "error", err)
				return
			}
		}
	}
}
