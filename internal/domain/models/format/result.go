package format

// Result is the classification of one input string.
//
// Value holds a parsed tree (Object, Array or a JSON scalar) only when Kind is
// KindStructuredData; for every other kind it is a string. RenderText is set
// for KindTagMarkup (indented markup) and KindEscapedText (decoded text).
// A Result is never modified after the classifier returns it.
type Result struct {
	Kind       Kind   `json:"kind"`
	Value      any    `json:"value"`
	RenderText string `json:"render_text,omitempty"`
}

// HasTree reports whether Value carries a parsed tree.
func (r Result) HasTree() bool {
	return r.Kind == KindStructuredData
}

// Text returns Value when it is a string.
func (r Result) Text() (string, bool) {
	s, ok := r.Value.(string)
	return s, ok
}

// Rendered is the projection of a Result onto one display tab.
type Rendered struct {
	View        View   `json:"view"`
	Kind        Kind   `json:"kind"`
	Display     string `json:"display"`
	Copy        string `json:"copy"`
	HTML        string `json:"html,omitempty"`
	Banner      string `json:"banner,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}
