package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "PageMark")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<p>hello</p>"))
	}))
	defer srv.Close()

	res, err := New().Fetch(context.Background(), srv.URL+"/page")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<p>hello</p>", res.HTML)

	_, err = New().Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFetch_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>local</p>"), 0644))

	for _, source := range []string{path, "file://" + path} {
		res, err := New().Fetch(context.Background(), source)
		require.NoError(t, err)
		assert.Equal(t, "<p>local</p>", res.HTML)
		assert.Equal(t, 0, res.StatusCode)
	}

	_, err := New().Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/a"))
	assert.True(t, IsRemote("http://localhost:8080"))
	assert.False(t, IsRemote("page.html"))
	assert.False(t, IsRemote("file:///tmp/page.html"))
	assert.False(t, IsRemote("https://"))
}
