package format

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	model "datavisor/internal/domain/models/format"
)

// maxNestingDepth mirrors the nesting limit of encoding/json so that a paste
// of a million brackets is rejected instead of exhausting the stack.
const maxNestingDepth = 10000

var (
	errTooDeep     = errors.New("nesting too deep")
	errNotKey      = errors.New("object key is not a string")
	errBadDelim    = errors.New("unexpected delimiter")
	errTrailerData = errors.New("trailing data after value")
)

// ParseStrict parses text as a single RFC 8259 JSON value: double-quoted keys,
// no trailing commas, no comments, nothing after the value. Objects keep their
// member order and numbers keep their source text.
func ParseStrict(text string) (any, bool) {
	v, err := parseDocument(text)
	return v, err == nil
}

// parseComposite succeeds only for objects and arrays.
func parseComposite(text string) (any, bool) {
	v, ok := ParseStrict(text)
	if !ok || !isComposite(v) {
		return nil, false
	}
	return v, true
}

func isComposite(v any) bool {
	switch v.(type) {
	case model.Object, model.Array:
		return true
	}
	return false
}

func parseDocument(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailerData
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, depth int) (any, error) {
	if depth > maxNestingDepth {
		return nil, errTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := model.Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errNotKey
			}
			val, err := decodeValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			obj = obj.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		arr := model.Array{}
		for dec.More() {
			val, err := decodeValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	return nil, errBadDelim
}
