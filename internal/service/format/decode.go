package format

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	reUnicodeEscape = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)

	controlEscapes = strings.NewReplacer(
		`\n`, "\n",
		`\t`, "\t",
		`\r`, "\r",
	)
)

// Decode turns literal escape sequences into the characters they name.
// \uXXXX escapes are resolved first (as UTF-16 code units, so an escaped
// surrogate pair yields one code point), then \n, \t and \r. Anything that is
// not a well-formed escape is copied through unchanged.
func Decode(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return controlEscapes.Replace(decodeUnicodeEscapes(s))
}

func decodeUnicodeEscapes(s string) string {
	matches := reUnicodeEscape.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for i := 0; i < len(matches); i++ {
		start, end := matches[i][0], matches[i][1]
		b.WriteString(s[last:start])
		last = end

		unit := escapeUnit(s[start:end])
		r := rune(unit)

		if utf16.IsSurrogate(r) {
			// A high surrogate directly followed by a low surrogate escape.
			if i+1 < len(matches) && matches[i+1][0] == end {
				next := escapeUnit(s[matches[i+1][0]:matches[i+1][1]])
				if pair := utf16.DecodeRune(r, rune(next)); pair != utf8.RuneError {
					b.WriteRune(pair)
					last = matches[i+1][1]
					i++
					continue
				}
			}
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	b.WriteString(s[last:])
	return b.String()
}

// escapeUnit parses the four hex digits of a `\uXXXX` match.
func escapeUnit(esc string) uint16 {
	n, err := strconv.ParseUint(esc[2:], 16, 16)
	if err != nil {
		return uint16(utf8.RuneError)
	}
	return uint16(n)
}
