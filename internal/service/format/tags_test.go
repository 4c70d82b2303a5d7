package format

import (
	"strings"
	"testing"
)

func TestFormatTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "nested elements",
			input: "<div><p>hi</p></div>",
			want:  "<div>\n  <p>\n    hi\n  </p>\n</div>",
		},
		{
			name:  "whitespace between tags collapses",
			input: "<ul>\n   <li>a</li>\n   <li>b</li>\n</ul>",
			want:  "<ul>\n  <li>\n    a\n  </li>\n  <li>\n    b\n  </li>\n</ul>",
		},
		{
			name:  "void and self-closing elements keep depth",
			input: "<div><br><img src=\"x.png\"><custom/><span>t</span></div>",
			want:  "<div>\n  <br>\n  <img src=\"x.png\">\n  <custom/>\n  <span>\n    t\n  </span>\n</div>",
		},
		{
			name:  "doctype",
			input: "<!DOCTYPE html><html><body></body></html>",
			want:  "<!DOCTYPE html>\n<html>\n  <body>\n  </body>\n</html>",
		},
		{
			name:  "unbalanced closing tags never go negative",
			input: "</div></div><p>",
			want:  "</div>\n</div>\n<p>",
		},
		{
			name:  "comments are content",
			input: "<div><!-- note --></div>",
			want:  "<div>\n  <!-- note -->\n</div>",
		},
		{
			name:  "text around tags",
			input: "before<b>bold</b>after",
			want:  "before\n<b>\n  bold\n</b>\nafter",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTags(tt.input); got != tt.want {
				t.Errorf("FormatTags(%q) =\n%s\nwant\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTags_DepthChangesOneLevelPerTag(t *testing.T) {
	out := FormatTags("<a><b><c></c></b></a>")
	lines := strings.Split(out, "\n")
	wantIndent := []int{0, 2, 4, 4, 2, 0}
	if len(lines) != len(wantIndent) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantIndent), out)
	}
	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent != wantIndent[i] {
			t.Errorf("line %d %q indent = %d, want %d", i, line, indent, wantIndent[i])
		}
	}
}

func TestFormatTags_PathologicalInput(t *testing.T) {
	in := strings.Repeat("<div>", 500) + strings.Repeat("</div>", 500)
	out := FormatTags(in)
	if !strings.HasPrefix(out, "<div>\n  <div>") {
		t.Errorf("unexpected prefix: %.40q", out)
	}
	if !strings.HasSuffix(out, "\n</div>") {
		t.Errorf("unexpected suffix: %.40q", out[len(out)-40:])
	}
}
