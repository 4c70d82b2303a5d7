package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"datavisor/internal/config"
	"datavisor/internal/domain"
)

func TestRespondJSON_DoesNotEscapeHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]string{"text": "<p>a & b</p>"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"<p>a & b</p>"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRespondError_ProblemDocument(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorWithExtras(rec, http.StatusRequestEntityTooLarge, "too big", map[string]interface{}{"limit": 10})

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["title"] != http.StatusText(http.StatusRequestEntityTooLarge) || body["detail"] != "too big" || body["limit"] != float64(10) {
		t.Errorf("body = %v", body)
	}
	if !strings.HasPrefix(body["type"].(string), "https://") {
		t.Errorf("type = %v", body["type"])
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Text string `json:"text"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"text":"hi"}`, nil},
		{"malformed", `{"text":`, domain.ErrValidation},
		{"unknown field", `{"text":"hi","extra":1}`, domain.ErrValidation},
		{"too large", `{"text":"` + strings.Repeat("a", config.MaxRequestBytes) + `"}`, domain.ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dest payload
			err := ParseJSON(rec, req, &dest)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseJSON: %v", err)
				}
				if dest.Text != "hi" {
					t.Errorf("Text = %q", dest.Text)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserIDContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetUserID(req) != "" {
		t.Error("empty context should have no user")
	}
	req = WithUserID(req, "user-1")
	if GetUserID(req) != "user-1" {
		t.Errorf("GetUserID = %q", GetUserID(req))
	}
}
