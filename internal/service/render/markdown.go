package render

import (
	"bytes"
	"fmt"
	"regexp"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownRenderer turns light markup into sanitized HTML. Safe for
// concurrent use.
type MarkdownRenderer struct {
	engine goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdownRenderer creates a GFM renderer (tables, strikethrough, task
// lists, autolinks) whose output passes through a UGC policy.
func NewMarkdownRenderer() *MarkdownRenderer {
	policy := bluemonday.UGCPolicy()
	// Keep fenced-block language hints so a client can highlight them.
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")

	return &MarkdownRenderer{
		engine: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: policy,
	}
}

// Render converts markdown to HTML.
func (m *MarkdownRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return m.policy.Sanitize(buf.String()), nil
}

// MarkupConverter converts tag markup to markdown in two stages: sanitize
// (scripts, event handlers and javascript: URLs are removed), then convert.
type MarkupConverter struct {
	policy    *bluemonday.Policy
	converter *md.Converter
}

// NewMarkupConverter creates a converter with a UGC sanitizing policy.
func NewMarkupConverter() *MarkupConverter {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataURIImages()

	return &MarkupConverter{
		policy:    policy,
		converter: md.NewConverter("", true, nil),
	}
}

// Convert returns the markdown form of markup.
func (c *MarkupConverter) Convert(markup string) (string, error) {
	sanitized := c.policy.Sanitize(markup)

	out, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert markup to markdown: %w", err)
	}
	return out, nil
}
