package voyageai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_EmbedText(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		want       []float32
		wantErrStr string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"data":[{"data":[{"embedding":[0.5,-0.25]}]}]}`,
			want:   []float32{0.5, -0.25},
		},
		{
			name:       "api_error",
			status:     http.StatusTooManyRequests,
			body:       `{"detail":"rate limited"}`,
			wantErrStr: "status 429",
		},
		{
			name:       "empty_response",
			status:     http.StatusOK,
			body:       `{"data":[]}`,
			wantErrStr: "empty embedding response",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				var req embeddingRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, [][]string{{"African news about politics"}}, req.Inputs)
				assert.Equal(t, "voyage-context-3", req.Model)
				assert.Equal(t, "query", req.InputType)
				assert.Equal(t, 512, req.OutputDimension)

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient("test-key", "voyage-context-3", 512, srv.Client())
			c.endpoint = srv.URL

			got, err := c.EmbedText(context.Background(), "African news about politics")
			if tc.wantErrStr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrStr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
