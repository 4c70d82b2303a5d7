package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const (
	DefaultStyleName = "catppuccin-mocha"

	// maxHighlightBytes bounds the input handed to the lexers. Larger texts
	// are shown without colour.
	maxHighlightBytes = 1 << 20
)

// Highlighter colours text with chroma for HTML pages and terminals.
// Safe for concurrent use.
type Highlighter struct {
	style *chroma.Style
	html  chroma.Formatter
	tty   chroma.Formatter
}

// NewHighlighter resolves a chroma style by name, falling back to the default.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultStyleName
	}
	return &Highlighter{
		style: styles.Get(styleName),
		html: chromahtml.New(
			chromahtml.Standalone(false),
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(4),
		),
		tty: formatters.TTY256,
	}
}

// StyleName returns the name of the resolved style.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}

// HTML renders text as a highlighted <pre> block. lexerName may be empty to
// detect the language from content.
func (h *Highlighter) HTML(text, lexerName string) (string, error) {
	return h.format(h.html, text, lexerName)
}

// Terminal renders text with 256-colour escape sequences.
func (h *Highlighter) Terminal(text, lexerName string) (string, error) {
	return h.format(h.tty, text, lexerName)
}

func (h *Highlighter) format(f chroma.Formatter, text, lexerName string) (string, error) {
	lexer := lexers.Fallback
	if len(text) <= maxHighlightBytes {
		lexer = ResolveLexer(lexerName, text)
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenise: %w", err)
	}

	var b strings.Builder
	if err := f.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return b.String(), nil
}

// ResolveLexer picks a lexer by name, then by chroma content analysis, then
// by go-enry's language guess, and finally plain text.
func ResolveLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	if lang := enry.GetLanguage("", []byte(text)); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	return lexers.Fallback
}
