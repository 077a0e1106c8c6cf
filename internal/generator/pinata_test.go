package generator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinata_PinFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "FROG-1.png", header.Filename)
		assert.Equal(t, []byte("PNGDATA"), data)
		assert.JSONEq(t, `{"name":"FROG-1.png"}`, r.FormValue("pinataMetadata"))

		_, _ = io.WriteString(w, `{"IpfsHash":"QmImage","PinSize":7}`)
	}))
	defer srv.Close()

	cid, err := NewPinata(srv.URL+"/", "jwt", time.Second).PinFile(context.Background(), "FROG-1.png", []byte("PNGDATA"))

	require.NoError(t, err)
	assert.Equal(t, "QmImage", cid)
}

func TestPinata_PinJSON(t *testing.T) {
	var req map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, _ = io.WriteString(w, `{"IpfsHash":"QmMeta"}`)
	}))
	defer srv.Close()

	cid, err := NewPinata(srv.URL, "jwt", time.Second).PinJSON(context.Background(), "FROG-1.json", Metadata{
		Name:   "Frog",
		Symbol: "FROG",
		Image:  "ipfs://QmImage",
	})

	require.NoError(t, err)
	assert.Equal(t, "QmMeta", cid)
	assert.Equal(t, map[string]any{"name": "FROG-1.json"}, req["pinataMetadata"])
	content := req["pinataContent"].(map[string]any)
	assert.Equal(t, "ipfs://QmImage", content["image"])
	assert.Equal(t, "FROG", content["symbol"])
}

func TestPinata_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pinning/pinJSONToIPFS" {
			_, _ = io.WriteString(w, `{}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewPinata(srv.URL, "bad", time.Second)

	_, err := p.PinFile(context.Background(), "a.png", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 401")

	_, err = p.PinJSON(context.Background(), "a.json", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty ipfs hash")
}
