package format

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PrettyPrint serializes a tree as two-space indented JSON. The output is
// exact: parsing it again yields an equal tree. This is the text a copy
// action places on the clipboard.
func PrettyPrint(v any) string {
	out, err := encode(v, "  ")
	if err != nil {
		return ""
	}
	return out
}

// PrettyPrintReadable is PrettyPrint with every literal \n sequence turned
// into a line break. Display only; the result is generally not valid JSON.
func PrettyPrintReadable(v any) string {
	return strings.ReplaceAll(PrettyPrint(v), `\n`, "\n")
}

// Compact serializes a tree without insignificant whitespace.
func Compact(v any) string {
	out, err := encode(v, "")
	if err != nil {
		return ""
	}
	return out
}

func encode(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
