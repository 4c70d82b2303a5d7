package format

// Kind is the detected display format of a pasted text.
type Kind string

const (
	// KindUnknown is referenced by the fallback banner but never produced by
	// the classifier: plain text always absorbs unmatched input.
	KindUnknown        Kind = "unknown"
	KindStructuredData Kind = "structured_data"
	KindLightMarkup    Kind = "light_markup"
	KindTagMarkup      Kind = "tag_markup"
	KindPlainText      Kind = "plain_text"
	KindEscapedText    Kind = "escaped_text"
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindUnknown,
		KindStructuredData,
		KindLightMarkup,
		KindTagMarkup,
		KindPlainText,
		KindEscapedText,
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// View identifies a display tab of the output pane.
type View string

const (
	ViewJSON     View = "json"
	ViewMarkdown View = "markdown"
	ViewHTML     View = "html"
	ViewDecoded  View = "decoded"
	ViewRaw      View = "raw"
)
