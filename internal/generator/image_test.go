package generator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageAPI_Logo(t *testing.T) {
	var req imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer img-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, _ = io.WriteString(w, `{"data":[{"b64_json":"`+base64.StdEncoding.EncodeToString([]byte("PNGDATA"))+`"}]}`)
	}))
	defer srv.Close()

	api := NewImageAPI(srv.URL, "img-key", "dall-e-3", time.Second)
	img, err := api.Logo(context.Background(), Details{Name: "Frog", Symbol: "FROG", ImageDescription: "a green frog"})

	require.NoError(t, err)
	assert.Equal(t, []byte("PNGDATA"), img)
	assert.Equal(t, "dall-e-3", req.Model)
	assert.Equal(t, "b64_json", req.ResponseFormat)
	assert.Equal(t, 1, req.N)
	assert.Contains(t, req.Prompt, "a green frog")
	assert.Contains(t, req.Prompt, `"FROG"`)
}

func TestImageAPI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"status", http.StatusBadRequest, `{"error":"content_policy_violation"}`, "unexpected status: 400"},
		{"empty", http.StatusOK, `{"data":[]}`, "no image"},
		{"bad base64", http.StatusOK, `{"data":[{"b64_json":"%%%"}]}`, "decode image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewImageAPI(srv.URL, "k", "m", time.Second).Logo(context.Background(), Details{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
