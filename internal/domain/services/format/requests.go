package format

// TextRequest carries a single pasted text.
type TextRequest struct {
	Text string `json:"text"`
}

// ClassifyRequest asks for a classification and one rendered view.
// An empty View selects the default tab for the detected kind.
type ClassifyRequest struct {
	Text string `json:"text"`
	View string `json:"view,omitempty"`
}

// RenderRequest asks for a specific view of a text.
type RenderRequest struct {
	Text string `json:"text"`
	View string `json:"view"`
}

// PrettyRequest asks for a JSON document to be pretty-printed.
// Readable selects the display variant with real line breaks.
type PrettyRequest struct {
	Text     string `json:"text"`
	Readable bool   `json:"readable"`
}
