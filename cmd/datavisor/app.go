package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"datavisor/internal/config"
	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/service/format"
	"datavisor/internal/service/render"
	"datavisor/internal/views"
)

const defaultWidth = 80

var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan, color.Bold)
	colorFaint  = color.New(color.Faint)
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// app holds what every command needs. The services are built in the root
// command's PersistentPreRunE, after the flags are known.
type app struct {
	colorMode string
	style     string
	verbose   bool

	logger      *slog.Logger
	registry    *views.Registry
	classifier  formatSvc.Classifier
	renderer    formatSvc.Renderer
	highlighter *render.Highlighter

	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

func (a *app) init(cmd *cobra.Command) error {
	switch a.colorMode {
	case colorAuto:
	case colorAlways:
		color.NoColor = false
	case colorNever:
		color.NoColor = true
	default:
		return fmt.Errorf("--color must be one of %s, %s or %s", colorAuto, colorAlways, colorNever)
	}

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	registry, err := views.NewRegistry()
	if err != nil {
		return fmt.Errorf("load view catalogue: %w", err)
	}
	a.registry = registry
	a.classifier = format.NewClassifier(a.logger)
	a.highlighter = render.NewHighlighter(a.style)
	a.renderer = render.NewRenderer(registry, a.highlighter, a.logger)
	return nil
}

// readInput takes the clipboard when paste is set, otherwise the named file,
// otherwise stdin. "-" also means stdin. One byte past the input limit is
// read so that the size rule can reject the input.
func (a *app) readInput(cmd *cobra.Command, args []string, paste bool) (string, error) {
	if paste {
		text, err := a.readClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(config.MaxInputBytes)+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// copyText places text on the clipboard. A failure is reported and the
// command carries on.
func (a *app) copyText(text string) {
	if err := a.writeClipboard(text); err != nil {
		a.logger.Warn("failed to copy to clipboard", "error", err)
		return
	}
	a.logger.Debug("copied to clipboard", "bytes", len(text))
}

// useColor reports whether escape sequences may be written to w.
func (a *app) useColor(w io.Writer) bool {
	switch a.colorMode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	return !color.NoColor && isTerminal(w)
}

// highlight colours text for w, or returns it unchanged when w takes no
// colour. Highlighting errors fall back to the plain text.
func (a *app) highlight(w io.Writer, text, lexer string) string {
	if !a.useColor(w) || text == "" {
		return text
	}
	out, err := a.highlighter.Terminal(text, lexer)
	if err != nil {
		a.logger.Debug("highlighting failed", "lexer", lexer, "error", err)
		return text
	}
	return out
}

// markdown renders a Markdown document for w with glamour.
func (a *app) markdown(w io.Writer, source string) string {
	if !a.useColor(w) || source == "" {
		return source
	}

	style := glamour.WithAutoStyle()
	if !isTerminal(w) {
		style = glamour.WithStandardStyle("dark")
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(terminalWidth(w)))
	if err != nil {
		a.logger.Debug("markdown renderer unavailable", "error", err)
		return source
	}
	out, err := tr.Render(source)
	if err != nil {
		a.logger.Debug("markdown rendering failed", "error", err)
		return source
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// writeText prints text followed by exactly one newline.
func writeText(w io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
