// Package format holds the detection-and-formatting core: it classifies a
// pasted string into one display format and prepares the text each format is
// shown with. Every function here is pure and safe for concurrent use.
package format

import (
	"log/slog"
	"strings"

	model "datavisor/internal/domain/models/format"
	formatSvc "datavisor/internal/domain/services/format"
)

// input carries the raw paste and its trimmed form through the rules.
type input struct {
	raw     string
	trimmed string
}

// rule is one step of the detection cascade. apply reports false to let the
// next rule try; a failed parse is a non-match, never an error.
type rule struct {
	name  string
	apply func(in input) (model.Result, bool)
}

// cascade is evaluated in order and the first match wins. plainTextRule always
// matches, so a non-empty input never stays unresolved.
var cascade = []rule{
	{name: "structured_data", apply: structuredDataRule},
	{name: "tag_markup", apply: tagMarkupRule},
	{name: "escaped_text", apply: escapedTextRule},
	{name: "light_markup", apply: lightMarkupRule},
	{name: "plain_text", apply: plainTextRule},
}

// Classify detects the format of text and returns its render-ready result.
func Classify(text string) model.Result {
	res, _ := classify(text)
	return res
}

func classify(text string) (model.Result, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Result{Kind: model.KindPlainText, Value: ""}, "empty"
	}

	in := input{raw: text, trimmed: trimmed}
	for _, r := range cascade {
		if res, ok := r.apply(in); ok {
			return res, r.name
		}
	}
	// Unreachable: plainTextRule accepts everything.
	return model.Result{Kind: model.KindPlainText, Value: text}, "plain_text"
}

func structuredDataRule(in input) (model.Result, bool) {
	if !looksLikeStructuredData(in.trimmed) {
		return model.Result{}, false
	}
	tree, ok := ParseStrict(in.trimmed)
	if !ok {
		return model.Result{}, false
	}
	return model.Result{Kind: model.KindStructuredData, Value: tree}, true
}

func tagMarkupRule(in input) (model.Result, bool) {
	if !looksLikeTagMarkup(in.trimmed) {
		return model.Result{}, false
	}
	return model.Result{
		Kind:       model.KindTagMarkup,
		Value:      in.trimmed,
		RenderText: FormatTags(in.trimmed),
	}, true
}

func escapedTextRule(in input) (model.Result, bool) {
	if !hasEscapes(in.raw) {
		return model.Result{}, false
	}
	decoded := Decode(in.raw)

	if tree, ok := parseDecodedComposite(decoded); ok {
		return model.Result{Kind: model.KindStructuredData, Value: tree}, true
	}
	if IsLightMarkup(decoded) {
		return model.Result{Kind: model.KindLightMarkup, Value: decoded}, true
	}
	return model.Result{
		Kind:       model.KindEscapedText,
		Value:      in.raw,
		RenderText: decoded,
	}, true
}

// parseDecodedComposite accepts a decoded object or array, or a JSON string
// whose content is itself an object or array (a stringified document).
func parseDecodedComposite(decoded string) (any, bool) {
	v, ok := ParseStrict(strings.TrimSpace(decoded))
	if !ok {
		return nil, false
	}
	if isComposite(v) {
		return v, true
	}
	if inner, isString := v.(string); isString {
		return parseComposite(strings.TrimSpace(inner))
	}
	return nil, false
}

func lightMarkupRule(in input) (model.Result, bool) {
	if !IsLightMarkup(in.raw) {
		return model.Result{}, false
	}
	return model.Result{Kind: model.KindLightMarkup, Value: in.raw}, true
}

func plainTextRule(in input) (model.Result, bool) {
	return model.Result{Kind: model.KindPlainText, Value: in.raw}, true
}

// Classifier adapts the package functions to formatSvc.Classifier and logs
// which rule matched.
type Classifier struct {
	logger *slog.Logger
}

// NewClassifier creates a classifier that logs decisions at debug level.
func NewClassifier(logger *slog.Logger) formatSvc.Classifier {
	return &Classifier{logger: logger}
}

// Classify implements formatSvc.Classifier.
func (c *Classifier) Classify(text string) model.Result {
	res, ruleName := classify(text)
	c.logger.Debug("input classified",
		"kind", res.Kind,
		"rule", ruleName,
		"input_bytes", len(text),
	)
	return res
}

// Decode implements formatSvc.Classifier.
func (c *Classifier) Decode(text string) string {
	return Decode(text)
}

// FormatTags implements formatSvc.Classifier.
func (c *Classifier) FormatTags(text string) string {
	return FormatTags(text)
}
