package format

import "regexp"

// lightMarkupPatterns are the document-markup signals; one hit is enough.
var lightMarkupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}\s`),   // heading
	regexp.MustCompile(`\*\*.+\*\*`),      // bold
	regexp.MustCompile(`\[.+\]\(.+\)`),    // link
	regexp.MustCompile(`(?m)^\s*[-*+]\s`), // bullet
	regexp.MustCompile(`\|.*\|.*\|`),      // table row
	regexp.MustCompile("`{3}"),            // fenced block
}

var (
	reTagOpener     = regexp.MustCompile(`(?i)^\s*<(!doctype|html|head|body|div|span|p|a|script|style|table|form|img|ul|ol)`)
	reEscapeTrigger = regexp.MustCompile(`\\u[0-9a-fA-F]{4}|\\n`)
)

// IsLightMarkup reports whether text looks like a Markdown document.
func IsLightMarkup(text string) bool {
	for _, re := range lightMarkupPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func looksLikeTagMarkup(trimmed string) bool {
	if reTagOpener.MatchString(trimmed) {
		return true
	}
	n := len(trimmed)
	return n > 0 && trimmed[0] == '<' && trimmed[n-1] == '>'
}

func looksLikeStructuredData(trimmed string) bool {
	n := len(trimmed)
	if n == 0 {
		return false
	}
	first, last := trimmed[0], trimmed[n-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}

func hasEscapes(raw string) bool {
	return reEscapeTrigger.MatchString(raw)
}
