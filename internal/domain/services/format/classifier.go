package format

import (
	model "datavisor/internal/domain/models/format"
)

// Classifier is the detection-and-formatting core.
//
// Implementations must be pure: the same input always yields the same
// result and nothing outside the returned value is touched.
type Classifier interface {
	// Classify detects the display format of text.
	Classify(text string) model.Result

	// Decode resolves literal \uXXXX, \n, \t and \r escapes.
	Decode(text string) string

	// FormatTags indents tag markup, one token per line.
	FormatTags(text string) string
}

// Renderer projects a classification onto a display tab.
type Renderer interface {
	// Render builds the display and copy text of res for view.
	// original is the untouched input the result was computed from.
	Render(original string, res model.Result, view model.View) model.Rendered

	// DefaultView returns the tab shown first for a kind.
	DefaultView(kind model.Kind) model.View
}
