package render

import (
	"testing"

	model "datavisor/internal/domain/models/format"
	"datavisor/internal/service/format"
)

func TestDisplayText(t *testing.T) {
	tree := format.Classify(`{"msg":"a\nb","n":1}`)
	if tree.Kind != model.KindStructuredData {
		t.Fatalf("fixture kind = %s", tree.Kind)
	}
	tags := format.Classify("<div><p>hi</p></div>")
	escaped := format.Classify(`caf\u00e9`)
	plain := format.Classify("just words")

	tests := []struct {
		name string
		res  model.Result
		view model.View
		want string
	}{
		{"json tree is readable", tree, model.ViewJSON, "{\n  \"msg\": \"a\nb\",\n  \"n\": 1\n}"},
		{"json without tree", plain, model.ViewJSON, "{\n  \"error\": \"Not valid JSON\"\n}"},
		{"html uses render text", tags, model.ViewHTML, "<div>\n  <p>\n    hi\n  </p>\n</div>"},
		{"html falls back to value", plain, model.ViewHTML, "just words"},
		{"html of a tree is compact", tree, model.ViewHTML, `{"msg":"a\nb","n":1}`},
		{"decoded", escaped, model.ViewDecoded, "café"},
		{"decoded without render text", plain, model.ViewDecoded, ""},
		{"raw text", escaped, model.ViewRaw, `caf\u00e9`},
		{"raw tree is exact", tree, model.ViewRaw, "{\n  \"msg\": \"a\\nb\",\n  \"n\": 1\n}"},
		{"markdown text", plain, model.ViewMarkdown, "just words"},
		{"markdown of a tree", tree, model.ViewMarkdown, ""},
		{"unknown tab behaves as raw", plain, model.View("pdf"), "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayText(tt.res, tt.view); got != tt.want {
				t.Errorf("DisplayText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCopyText(t *testing.T) {
	tree := format.Classify(`{"msg":"a\nb"}`)
	tags := format.Classify("<p>x</p>")
	escaped := format.Classify(`line\nbreak`)
	plain := format.Classify("words")

	tests := []struct {
		name string
		res  model.Result
		view model.View
		want string
	}{
		{"json tree copies exact JSON", tree, model.ViewJSON, "{\n  \"msg\": \"a\\nb\"\n}"},
		{"raw tree copies compact JSON", tree, model.ViewRaw, `{"msg":"a\nb"}`},
		{"markdown tree copies compact JSON", tree, model.ViewMarkdown, `{"msg":"a\nb"}`},
		{"decoded copies render text", escaped, model.ViewDecoded, "line\nbreak"},
		{"raw escaped copies the input", escaped, model.ViewRaw, `line\nbreak`},
		{"html copies indented markup", tags, model.ViewHTML, "<p>\n  x\n</p>"},
		{"json of text copies the text", plain, model.ViewJSON, "words"},
		{"empty result", model.Result{Kind: model.KindPlainText}, model.ViewRaw, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CopyText(tt.res, tt.view); got != tt.want {
				t.Errorf("CopyText = %q, want %q", got, tt.want)
			}
		})
	}
}
