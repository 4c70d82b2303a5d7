package httputil

import (
	"bytes"
	"encoding/json"
	"maps"
	"net/http"
)

// RespondJSON writes data as JSON with the given status. The body is encoded
// before any header is written so that an encoding failure can still become
// a 500. HTML characters are left unescaped: payloads routinely carry pasted
// markup.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := encodeJSON(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	send(w, status, "application/json", payload)
}

// ProblemDetail is an RFC 7807 problem document. Extra members are written
// next to the standard ones.
type ProblemDetail struct {
	Type     string
	Title    string
	Status   int
	Detail   string
	Instance string
	Extra    map[string]interface{}
}

func (p ProblemDetail) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(p.Extra)+5)
	maps.Copy(m, p.Extra)
	m["type"] = p.Type
	m["title"] = p.Title
	m["status"] = p.Status
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}
	return json.Marshal(m)
}

// RespondError writes a problem document for status.
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondErrorWithExtras(w, status, detail, nil)
}

// RespondErrorWithExtras writes a problem document carrying extra members,
// such as the byte limit of a 413.
func RespondErrorWithExtras(w http.ResponseWriter, status int, detail string, extras map[string]interface{}) {
	problem := ProblemDetail{
		Type:   problemType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Extra:  extras,
	}
	payload, err := json.Marshal(problem)
	if err != nil {
		send(w, http.StatusInternalServerError, "text/plain", []byte("internal server error"))
		return
	}
	send(w, status, "application/problem+json", payload)
}

func send(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func encodeJSON(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const rfc9110 = "https://www.rfc-editor.org/rfc/rfc9110.html#name-"

var problemTypes = map[int]string{
	http.StatusBadRequest:            rfc9110 + "400-bad-request",
	http.StatusUnauthorized:          rfc9110 + "401-unauthorized",
	http.StatusNotFound:              rfc9110 + "404-not-found",
	http.StatusMethodNotAllowed:      rfc9110 + "405-method-not-allowed",
	http.StatusRequestEntityTooLarge: rfc9110 + "413-content-too-large",
	http.StatusInternalServerError:   rfc9110 + "500-internal-server-error",
}

// problemType returns the type URI of a status, about:blank when there is
// none.
func problemType(status int) string {
	if t, ok := problemTypes[status]; ok {
		return t
	}
	return "about:blank"
}
