package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantNext   bool
	}{
		{name: "no_list_allows_any", origin: "https://evil.example", method: http.MethodGet, wantOrigin: "*", wantNext: true},
		{name: "wildcard_allows_any", allowed: []string{"*"}, origin: "https://a.example", method: http.MethodGet, wantOrigin: "*", wantNext: true},
		{
			name:       "listed_origin_echoed",
			allowed:    []string{"https://nairobell.com", "https://app.nairobell.com"},
			origin:     "https://app.nairobell.com",
			method:     http.MethodGet,
			wantOrigin: "https://app.nairobell.com",
			wantNext:   true,
		},
		{
			name:     "unlisted_origin_gets_no_allow_header",
			allowed:  []string{"https://nairobell.com"},
			origin:   "https://evil.example",
			method:   http.MethodGet,
			wantNext: true,
		},
		{name: "preflight_stops_chain", origin: "https://a.example", method: http.MethodOptions, wantOrigin: "*"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(tc.method, "/v1/items", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()

			newCORSMiddleware(tc.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.wantNext, called)
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
		})
	}
}
