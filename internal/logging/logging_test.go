package logging

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{name: "info level", debugMode: false, wantDebug: false},
		{name: "debug level", debugMode: true, wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.debugMode)
			logger.Debug("loading recipes")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("loading recipes")))
		})
	}
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		target    string
		wantLevel string
		wantAttrs []string
	}{
		{
			name: "ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			target:    "/healthz",
			wantLevel: "level=INFO",
			wantAttrs: []string{"method=GET", "path=/healthz", "status=200", "bytes=2"},
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			target:    "/get-all-recipes?page=x",
			wantLevel: "level=WARN",
			wantAttrs: []string{"path=/get-all-recipes", `query="page=x"`, "status=400"},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			target:    "/",
			wantLevel: "level=ERROR",
			wantAttrs: []string{"status=500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			handler := Middleware(logger)(tt.handler)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			for _, attr := range tt.wantAttrs {
				assert.Contains(t, out, attr)
			}
		})
	}
}
