package format

import (
	"regexp"
	"strings"
)

const tagIndent = "  "

var (
	reInterTagSpace = regexp.MustCompile(`>\s+<`)
	reTagToken      = regexp.MustCompile(`<[^>]+>`)
	reSelfClosing   = regexp.MustCompile(`^<[a-zA-Z][^>]*/>`)
	reVoidElement   = regexp.MustCompile(`(?i)^<(img|br|hr|input|meta|link|base|area|col|embed|param|source|track|wbr|!doctype)`)
	reOpeningTag    = regexp.MustCompile(`^<[a-zA-Z][^>]*>`)
)

// FormatTags re-indents tag markup: one token per line, two spaces per open
// element. Closing tags dedent before they are written; void and self-closing
// elements never change the depth. Unbalanced markup is tolerated, the depth
// simply never goes below zero.
func FormatTags(text string) string {
	input := strings.TrimSpace(reInterTagSpace.ReplaceAllString(text, "><"))

	var b strings.Builder
	indent := ""
	for _, tok := range tokenizeTags(input) {
		switch {
		case strings.HasPrefix(tok, "</"):
			if len(indent) >= len(tagIndent) {
				indent = indent[len(tagIndent):]
			}
			writeLine(&b, indent, tok)
		case reSelfClosing.MatchString(tok), reVoidElement.MatchString(tok):
			writeLine(&b, indent, tok)
		case reOpeningTag.MatchString(tok):
			writeLine(&b, indent, tok)
			indent += tagIndent
		default:
			writeLine(&b, indent, tok)
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenizeTags splits on tag boundaries and keeps both the tags and the text
// between them. Empty segments are dropped.
func tokenizeTags(s string) []string {
	var tokens []string
	last := 0
	for _, loc := range reTagToken.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			tokens = append(tokens, s[last:loc[0]])
		}
		tokens = append(tokens, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		tokens = append(tokens, s[last:])
	}
	return tokens
}

func writeLine(b *strings.Builder, indent, tok string) {
	b.WriteString(indent)
	b.WriteString(tok)
	b.WriteByte('\n')
}
