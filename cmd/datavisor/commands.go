package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	model "datavisor/internal/domain/models/format"
	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/service/format"
	"datavisor/internal/service/render"
	"datavisor/internal/service/rules"
)

var version = "dev"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "datavisor",
		Short: "Detect and pretty-print pasted text",
		Long: `datavisor detects whether a text is JSON, HTML, Markdown, an escaped
string or plain text, and prints it the way it is best read.

Examples:
  # classify a file
  datavisor classify response.json

  # classify the clipboard and copy the formatted result back
  datavisor classify --paste --copy

  # resolve escape sequences from stdin
  echo 'caf\u00e9' | datavisor decode`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.colorMode, "color", colorAuto, "colorize output: auto, always or never")
	root.PersistentFlags().StringVar(&a.style, "style", render.DefaultStyleName, "chroma style for highlighting")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newClassifyCmd(a),
		newDecodeCmd(a),
		newFormatTagsCmd(a),
		newPrettyCmd(a),
		newViewsCmd(a),
	)
	return root
}

type classifyOptions struct {
	paste  bool
	copy   bool
	asJSON bool
	view   string
}

func newClassifyCmd(a *app) *cobra.Command {
	opts := &classifyOptions{}
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Detect the format of a text and print its formatted view",
		Long: `Detect the format of a text and print it on the tab it opens on, or on
the tab named by --view. The text comes from the file argument, from stdin,
or from the clipboard with --paste.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClassify(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.paste, "paste", false, "read the text from the clipboard")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the formatted text to the clipboard")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the classification result as JSON")
	cmd.Flags().StringVar(&opts.view, "view", "", "tab to show (see 'datavisor views')")
	return cmd
}

func (a *app) runClassify(cmd *cobra.Command, args []string, opts *classifyOptions) error {
	text, err := a.readInput(cmd, args, opts.paste)
	if err != nil {
		return err
	}
	req := formatSvc.ClassifyRequest{Text: text, View: opts.view}
	if err := rules.Classify(&req, a.registry); err != nil {
		return err
	}

	res := a.classifier.Classify(text)
	view := model.View(opts.view)
	if view == "" {
		view = a.renderer.DefaultView(res.Kind)
	}
	rendered := a.renderer.Render(text, res, view)

	if opts.copy && !rendered.Placeholder {
		a.copyText(rendered.Copy)
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	errOut := cmd.ErrOrStderr()
	if rendered.Placeholder {
		colorFaint.Fprintln(errOut, rendered.Display)
		return nil
	}
	colorCyan.Fprintf(errOut, "%s (%s view)\n", res.Kind, view)
	if rendered.Banner != "" {
		colorYellow.Fprintln(errOut, rendered.Banner)
	}

	body := rendered.Display
	if view == model.ViewMarkdown {
		body = a.markdown(out, body)
	} else {
		var lexer string
		if d, ok := a.registry.Get(view); ok {
			lexer = d.Lexer
		}
		body = a.highlight(out, body, lexer)
	}
	return writeText(out, body)
}

func newDecodeCmd(a *app) *cobra.Command {
	var paste bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Resolve \\uXXXX and \\n escape sequences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.readTextRequest(cmd, args, paste)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), a.classifier.Decode(req.Text))
		},
	}
	cmd.Flags().BoolVar(&paste, "paste", false, "read the text from the clipboard")
	return cmd
}

func newFormatTagsCmd(a *app) *cobra.Command {
	var paste bool
	cmd := &cobra.Command{
		Use:   "format-tags [file]",
		Short: "Indent tag markup, one tag per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.readTextRequest(cmd, args, paste)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return writeText(out, a.highlight(out, a.classifier.FormatTags(req.Text), "html"))
		},
	}
	cmd.Flags().BoolVar(&paste, "paste", false, "read the text from the clipboard")
	return cmd
}

func newPrettyCmd(a *app) *cobra.Command {
	var paste, readable bool
	cmd := &cobra.Command{
		Use:   "pretty [file]",
		Short: "Pretty-print a JSON document",
		Long: `Pretty-print a JSON document with two-space indentation, keeping the
member order. With --readable, escaped newlines inside strings are shown as
line breaks; that output is for reading and is generally not valid JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args, paste)
			if err != nil {
				return err
			}
			req := formatSvc.PrettyRequest{Text: text, Readable: readable}
			if err := rules.Pretty(&req); err != nil {
				return err
			}

			tree, ok := format.ParseStrict(req.Text)
			if !ok {
				return errors.New("input is not a valid JSON document")
			}
			pretty := format.PrettyPrint(tree)
			if req.Readable {
				pretty = format.PrettyPrintReadable(tree)
			}
			out := cmd.OutOrStdout()
			return writeText(out, a.highlight(out, pretty, "json"))
		},
	}
	cmd.Flags().BoolVar(&paste, "paste", false, "read the text from the clipboard")
	cmd.Flags().BoolVar(&readable, "readable", false, "show escaped newlines as line breaks")
	return cmd
}

func newViewsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the available views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printViews(cmd.OutOrStdout())
		},
	}
}

func (a *app) printViews(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tDEFAULT FOR\tDESCRIPTION")
	for _, d := range a.registry.List() {
		kinds := make([]string, len(d.DefaultFor))
		for i, k := range d.DefaultFor {
			kinds[i] = string(k)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Label, strings.Join(kinds, ","), d.Description)
	}
	return tw.Flush()
}

func (a *app) readTextRequest(cmd *cobra.Command, args []string, paste bool) (*formatSvc.TextRequest, error) {
	text, err := a.readInput(cmd, args, paste)
	if err != nil {
		return nil, err
	}
	req := &formatSvc.TextRequest{Text: text}
	if err := rules.Text(req); err != nil {
		return nil, err
	}
	return req, nil
}
