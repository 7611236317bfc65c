package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "allowed origin gets headers",
			origins:     []string{"https://credinta.live"},
			method:      http.MethodGet,
			origin:      "https://credinta.live",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://credinta.live",
		},
		{
			name:       "unknown origin gets no headers",
			origins:    []string{"https://credinta.live"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight is answered without reaching the handler",
			origins:     []string{"https://credinta.live"},
			method:      http.MethodOptions,
			origin:      "https://credinta.live",
			wantStatus:  http.StatusNoContent,
			wantAllowed: "https://credinta.live",
		},
		{
			name:        "wildcard allows any origin",
			origins:     []string{"*"},
			method:      http.MethodGet,
			origin:      "https://staging.credinta.live",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://staging.credinta.live",
		},
		{
			name:        "trailing slash in config is normalized",
			origins:     []string{"https://credinta.live/"},
			method:      http.MethodGet,
			origin:      "https://credinta.live",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://credinta.live",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.origins, next)
			req := httptest.NewRequest(tt.method, "http://test/api/posts", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllowed, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rr.Header().Values("Vary"), "Origin")
			if tt.method == http.MethodOptions && tt.wantAllowed != "" {
				assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
