package handler

import (
	"log/slog"
	"net/http"

	"datavisor/internal/domain"
	model "datavisor/internal/domain/models/format"
	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/httputil"
	"datavisor/internal/service/format"
	"datavisor/internal/service/rules"
	"datavisor/internal/views"
)

// FormatHandler exposes the classifier over HTTP. Every endpoint is
// stateless.
type FormatHandler struct {
	classifier formatSvc.Classifier
	renderer   formatSvc.Renderer
	views      *views.Registry
	logger     *slog.Logger
}

// NewFormatHandler creates a new format handler
func NewFormatHandler(
	classifier formatSvc.Classifier,
	renderer formatSvc.Renderer,
	registry *views.Registry,
	logger *slog.Logger,
) *FormatHandler {
	return &FormatHandler{
		classifier: classifier,
		renderer:   renderer,
		views:      registry,
		logger:     logger,
	}
}

// ClassifyResponse pairs a result with one rendered view of it.
type ClassifyResponse struct {
	Result   model.Result   `json:"result"`
	Rendered model.Rendered `json:"rendered"`
}

// TextResponse carries a transformed text.
type TextResponse struct {
	Text string `json:"text"`
}

// Classify detects the format of a text and renders the requested view, or
// the default view of the detected kind.
// POST /api/classify
func (h *FormatHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req formatSvc.ClassifyRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := rules.Classify(&req, h.views); err != nil {
		handleError(w, err)
		return
	}

	res := h.classifier.Classify(req.Text)
	view := model.View(req.View)
	if view == "" {
		view = h.renderer.DefaultView(res.Kind)
	}

	httputil.RespondJSON(w, http.StatusOK, ClassifyResponse{
		Result:   res,
		Rendered: h.renderer.Render(req.Text, res, view),
	})
}

// Render renders a specific view of a text.
// POST /api/render
func (h *FormatHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req formatSvc.RenderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := rules.Render(&req, h.views); err != nil {
		handleError(w, err)
		return
	}

	res := h.classifier.Classify(req.Text)
	httputil.RespondJSON(w, http.StatusOK, h.renderer.Render(req.Text, res, model.View(req.View)))
}

// Decode resolves escape sequences.
// POST /api/decode
func (h *FormatHandler) Decode(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseText(w, r)
	if !ok {
		return
	}
	httputil.RespondJSON(w, http.StatusOK, TextResponse{Text: h.classifier.Decode(req.Text)})
}

// FormatTags indents tag markup.
// POST /api/format-tags
func (h *FormatHandler) FormatTags(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseText(w, r)
	if !ok {
		return
	}
	httputil.RespondJSON(w, http.StatusOK, TextResponse{Text: h.classifier.FormatTags(req.Text)})
}

// Pretty pretty-prints a JSON document. The readable variant shows escaped
// newlines as line breaks and is generally not valid JSON.
// POST /api/pretty
func (h *FormatHandler) Pretty(w http.ResponseWriter, r *http.Request) {
	var req formatSvc.PrettyRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := rules.Pretty(&req); err != nil {
		handleError(w, err)
		return
	}

	tree, ok := format.ParseStrict(req.Text)
	if !ok {
		handleError(w, &domain.ValidationError{Message: "text is not a valid JSON document"})
		return
	}

	out := format.PrettyPrint(tree)
	if req.Readable {
		out = format.PrettyPrintReadable(tree)
	}
	httputil.RespondJSON(w, http.StatusOK, TextResponse{Text: out})
}

func (h *FormatHandler) parseText(w http.ResponseWriter, r *http.Request) (*formatSvc.TextRequest, bool) {
	var req formatSvc.TextRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return nil, false
	}
	if err := rules.Text(&req); err != nil {
		handleError(w, err)
		return nil, false
	}
	return &req, true
}
