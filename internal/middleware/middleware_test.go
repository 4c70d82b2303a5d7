package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"datavisor/internal/domain"
	"datavisor/internal/domain/models"
	"datavisor/internal/httputil"
)

type stubVerifier struct {
	valid string
}

func (s stubVerifier) VerifyToken(token string) (*models.Claims, error) {
	if token != s.valid {
		return nil, domain.ErrUnauthorized
	}
	return &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, nil
}

func (s stubVerifier) Close() error { return nil }

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, httputil.GetUserID(r))
	})
}

func TestAuthMiddleware(t *testing.T) {
	h := AuthMiddleware(stubVerifier{valid: "good"})(echoUser())

	tests := []struct {
		name       string
		method     string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK, ""},
		{"preflight passes", http.MethodOptions, "/api/classify", "", http.StatusOK, ""},
		{"missing token", http.MethodPost, "/api/classify", "", http.StatusUnauthorized, ""},
		{"wrong scheme", http.MethodPost, "/api/classify", "Basic good", http.StatusUnauthorized, ""},
		{"bad token", http.MethodPost, "/api/classify", "Bearer bad", http.StatusUnauthorized, ""},
		{"good token", http.MethodPost, "/api/classify", "Bearer good", http.StatusOK, "user-1"},
		{"query token for streams", http.MethodGet, "/api/sessions/x/stream?access_token=good", "", http.StatusOK, "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/views", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(logs.String(), "handler panicked") {
		t.Errorf("panic not logged: %s", logs.String())
	}
}

func TestRequestLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var seen string
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetRequestID(r)
		if _, ok := w.(http.Flusher); !ok {
			t.Error("wrapped writer lost http.Flusher")
		}
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	h.ServeHTTP(rec, req)

	if seen != "req-42" || rec.Header().Get("X-Request-ID") != "req-42" {
		t.Errorf("request id = %q, header = %q", seen, rec.Header().Get("X-Request-ID"))
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("a request id should be generated")
	}
}
