// Package render projects classification results onto display tabs: the
// text each tab shows, what a copy action yields and highlighted HTML.
package render

import (
	"log/slog"

	model "datavisor/internal/domain/models/format"
	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/views"
)

// Renderer implements formatSvc.Renderer.
type Renderer struct {
	views       *views.Registry
	highlighter *Highlighter
	markdown    *MarkdownRenderer
	converter   *MarkupConverter
	logger      *slog.Logger
}

// NewRenderer creates a renderer backed by the view catalogue.
func NewRenderer(registry *views.Registry, highlighter *Highlighter, logger *slog.Logger) formatSvc.Renderer {
	return &Renderer{
		views:       registry,
		highlighter: highlighter,
		markdown:    NewMarkdownRenderer(),
		converter:   NewMarkupConverter(),
		logger:      logger,
	}
}

// DefaultView implements formatSvc.Renderer.
func (r *Renderer) DefaultView(kind model.Kind) model.View {
	return r.views.DefaultView(kind)
}

// Render implements formatSvc.Renderer. Rendering never fails: a highlighting
// or conversion error leaves the HTML field empty and is logged.
func (r *Renderer) Render(original string, res model.Result, view model.View) model.Rendered {
	out := model.Rendered{View: view, Kind: res.Kind}

	if original == "" {
		out.Placeholder = true
		out.Display = PlaceholderText
		return out
	}
	if res.Kind == model.KindUnknown {
		out.Banner = UnknownBanner
	}

	out.Display = r.display(res, view)
	out.Copy = CopyText(res, view)

	if view == model.ViewMarkdown {
		out.HTML = r.markdownHTML(out.Display)
	} else {
		out.HTML = r.highlight(out.Display, view)
	}
	return out
}

func (r *Renderer) display(res model.Result, view model.View) string {
	if view != model.ViewMarkdown || res.Kind != model.KindTagMarkup {
		return DisplayText(res, view)
	}

	markup, _ := res.Text()
	converted, err := r.converter.Convert(markup)
	if err != nil {
		r.logger.Warn("markup conversion failed, showing markup",
			"error", err,
			"input_bytes", len(markup),
		)
		return markup
	}
	return converted
}

func (r *Renderer) markdownHTML(source string) string {
	if source == "" {
		return ""
	}
	out, err := r.markdown.Render(source)
	if err != nil {
		r.logger.Warn("markdown rendering failed", "error", err)
		return ""
	}
	return out
}

func (r *Renderer) highlight(text string, view model.View) string {
	if text == "" {
		return ""
	}

	var lexer string
	if d, ok := r.views.Get(view); ok {
		lexer = d.Lexer
	}

	out, err := r.highlighter.HTML(text, lexer)
	if err != nil {
		r.logger.Warn("highlighting failed",
			"view", view,
			"lexer", lexer,
			"error", err,
		)
		return ""
	}
	return out
}
