package handler

import "net/http"

// RegisterRoutes wires every endpoint onto mux (Go 1.22+ method patterns).
func RegisterRoutes(mux *http.ServeMux, formats *FormatHandler, sessions *SessionHandler, views *ViewsHandler) {
	// Health check
	mux.HandleFunc("GET /health", HealthCheck)

	// View catalogue
	mux.HandleFunc("GET /api/views", views.ListViews)

	// Stateless operations
	mux.HandleFunc("POST /api/classify", formats.Classify)
	mux.HandleFunc("POST /api/render", formats.Render)
	mux.HandleFunc("POST /api/decode", formats.Decode)
	mux.HandleFunc("POST /api/format-tags", formats.FormatTags)
	mux.HandleFunc("POST /api/pretty", formats.Pretty)

	// Live sessions
	mux.HandleFunc("POST /api/sessions", sessions.CreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", sessions.GetSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", sessions.DeleteSession)
	mux.HandleFunc("PUT /api/sessions/{id}/input", sessions.SubmitInput)
	mux.HandleFunc("GET /api/sessions/{id}/stream", sessions.StreamSession) // SSE
}
