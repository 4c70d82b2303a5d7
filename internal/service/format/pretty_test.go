package format

import (
	"encoding/json"
	"reflect"
	"testing"

	model "datavisor/internal/domain/models/format"
)

func TestPrettyPrint(t *testing.T) {
	tree, ok := ParseStrict(`{"z":1,"a":[true,null,"<b>&"],"m":{}}`)
	if !ok {
		t.Fatal("ParseStrict failed")
	}

	want := "{\n  \"z\": 1,\n  \"a\": [\n    true,\n    null,\n    \"<b>&\"\n  ],\n  \"m\": {}\n}"
	if got := PrettyPrint(tree); got != want {
		t.Errorf("PrettyPrint =\n%s\nwant\n%s", got, want)
	}
}

func TestPrettyPrint_EmptyContainers(t *testing.T) {
	if got := PrettyPrint(model.Array{}); got != "[]" {
		t.Errorf("PrettyPrint(empty array) = %q", got)
	}
	if got := PrettyPrint(model.Object{}); got != "{}" {
		t.Errorf("PrettyPrint(empty object) = %q", got)
	}
	if got := PrettyPrint(model.Object(nil)); got != "{}" {
		t.Errorf("PrettyPrint(nil object) = %q", got)
	}
}

func TestPrettyPrintReadable(t *testing.T) {
	tree, _ := ParseStrict(`{"msg":"line one\nline two"}`)

	exact := PrettyPrint(tree)
	if exact != "{\n  \"msg\": \"line one\\nline two\"\n}" {
		t.Errorf("PrettyPrint = %q", exact)
	}

	readable := PrettyPrintReadable(tree)
	if readable != "{\n  \"msg\": \"line one\nline two\"\n}" {
		t.Errorf("PrettyPrintReadable = %q", readable)
	}

	var v any
	if err := json.Unmarshal([]byte(readable), &v); err == nil {
		t.Error("readable output should not be valid JSON when strings contain newlines")
	}
}

func TestPrettyPrint_RoundTrip(t *testing.T) {
	docs := []string{
		`{"a":1}`,
		`[1,2.50,-3e10,12345678901234567890]`,
		`{"nested":{"deep":[{"x":"\u00e9\n\t\"q\""}]},"dup":1,"dup":2}`,
		`[]`,
		`{"html":"<script>alert(1)</script>&amp;"}`,
		`[{"":""},[[]],{"k":false}]`,
	}

	for _, doc := range docs {
		res := Classify(doc)
		if res.Kind != model.KindStructuredData {
			t.Fatalf("Classify(%q).Kind = %s", doc, res.Kind)
		}

		again, ok := ParseStrict(PrettyPrint(res.Value))
		if !ok {
			t.Fatalf("PrettyPrint(%q) did not re-parse", doc)
		}
		if !reflect.DeepEqual(again, res.Value) {
			t.Errorf("round trip of %q:\n got %#v\nwant %#v", doc, again, res.Value)
		}
	}
}

func TestCompact(t *testing.T) {
	tree, _ := ParseStrict("{ \"b\" : [ 1 , 2 ] ,\n \"a\" : \"x\" }")
	if got := Compact(tree); got != `{"b":[1,2],"a":"x"}` {
		t.Errorf("Compact = %s", got)
	}
}
