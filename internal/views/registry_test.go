package views

import (
	"reflect"
	"strings"
	"testing"

	model "datavisor/internal/domain/models/format"
)

func TestNewRegistry_PreservesFileOrder(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	want := []model.View{model.ViewJSON, model.ViewMarkdown, model.ViewHTML, model.ViewDecoded, model.ViewRaw}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestRegistry_DefaultView(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	tests := []struct {
		kind model.Kind
		want model.View
	}{
		{model.KindStructuredData, model.ViewJSON},
		{model.KindLightMarkup, model.ViewMarkdown},
		{model.KindTagMarkup, model.ViewHTML},
		{model.KindEscapedText, model.ViewDecoded},
		{model.KindPlainText, model.ViewRaw},
		{model.KindUnknown, model.ViewRaw},
		{model.Kind("bogus"), model.ViewRaw},
	}

	for _, tt := range tests {
		if got := r.DefaultView(tt.kind); got != tt.want {
			t.Errorf("DefaultView(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	d, ok := r.Get(model.ViewJSON)
	if !ok {
		t.Fatal("json view missing")
	}
	if d.Label != "JSON" || d.Lexer != "json" {
		t.Errorf("json descriptor = %+v", d)
	}
	if r.Has(model.View("pdf")) {
		t.Error("Has(pdf) = true")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "views: {}\n",
			wantErr: "empty",
		},
		{
			name:    "unknown kind",
			yaml:    "views:\n  raw:\n    label: Raw\n    default_for: [spreadsheet]\n",
			wantErr: "unknown kind",
		},
		{
			name: "duplicate default",
			yaml: "views:\n" +
				"  a:\n    default_for: [plain_text]\n" +
				"  b:\n    default_for: [plain_text]\n",
			wantErr: "default of both",
		},
		{
			name:    "missing default",
			yaml:    "views:\n  raw:\n    default_for: [plain_text]\n",
			wantErr: "has no default view",
		},
		{
			name:    "views not a mapping",
			yaml:    "views: [json, raw]\n",
			wantErr: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
