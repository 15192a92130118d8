package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mozuk/mozuk-backend/pkg/ctxutil"
)

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Error("request ID not set on context")
	}
	if rec.Header().Get("X-Request-Id") != got {
		t.Errorf("response header mismatch: got %q, want %q", rec.Header().Get("X-Request-Id"), got)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	t.Parallel()

	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-supplied")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "client-supplied" {
		t.Errorf("request ID = %q, want client-supplied", got)
	}
}
