package render

import (
	model "datavisor/internal/domain/models/format"
	"datavisor/internal/service/format"
)

const (
	// PlaceholderText is shown while the input is empty.
	PlaceholderText = "Waiting for input..."

	// UnknownBanner is shown above the raw text of an unrecognized input.
	UnknownBanner = "Unknown format detected. Showing raw text."
)

// notJSON is displayed on the json tab when the input carries no tree.
var notJSON = model.Object{{Key: "error", Value: "Not valid JSON"}}

// DisplayText returns the text a tab shows for res, before any highlighting.
// The markdown tab is handled by the Renderer because markup is converted.
func DisplayText(res model.Result, view model.View) string {
	text, isText := res.Text()

	switch view {
	case model.ViewJSON:
		if res.HasTree() {
			return format.PrettyPrintReadable(res.Value)
		}
		return format.PrettyPrintReadable(notJSON)

	case model.ViewMarkdown:
		return text

	case model.ViewHTML:
		if res.RenderText != "" {
			return res.RenderText
		}
		if isText {
			return text
		}
		return format.Compact(res.Value)

	case model.ViewDecoded:
		return res.RenderText
	}

	// raw, and any tab this build does not know
	if isText {
		return text
	}
	return format.PrettyPrint(res.Value)
}

// CopyText returns what a copy action places on the clipboard. Structured
// data is always copied as exact JSON, never the readable display variant.
func CopyText(res model.Result, view model.View) string {
	switch {
	case view == model.ViewJSON && res.HasTree():
		return format.PrettyPrint(res.Value)
	case (view == model.ViewDecoded || view == model.ViewHTML) && res.RenderText != "":
		return res.RenderText
	}

	if text, ok := res.Text(); ok {
		return text
	}
	if res.Value != nil {
		return format.Compact(res.Value)
	}
	return ""
}
