package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servedir/core/dispatch"
	"github.com/dmitrymomot/servedir/core/server"
)

func newDispatcherFor(t *testing.T, root string) *dispatch.Dispatcher {
	t.Helper()
	return dispatch.New(root)
}

func testDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "test.txt"), []byte("test content"), 0o644))
	return dispatch.New(root)
}

func TestHandlerServesFile(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	req := httptest.NewRequest(http.MethodGet, "/test.txt", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test content", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "12", w.Header().Get("Content-Length"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerQueryComponentIgnored(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	req := httptest.NewRequest(http.MethodGet, "/test.txt?download=1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test content", w.Body.String())
}

func TestHandlerHead(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	req := httptest.NewRequest(http.MethodHead, "/test.txt", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "12", w.Header().Get("Content-Length"))
}

func TestHandlerOptionsPreflight(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "GET, HEAD, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestHandlerRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method not allowed", w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerDirectoryListing(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Directory listing")
	assert.Contains(t, w.Body.String(), "test.txt")
}

func TestHandlerServesListedHrefs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "with space.txt"), []byte("spaced"), 0o644))

	h := server.Handler(dispatch.New(root))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `href="/with%20space.txt"`)

	// The link the listing itself generated must round-trip to the file.
	req = httptest.NewRequest(http.MethodGet, "/with%20space.txt", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "spaced", w.Body.String())
}

func TestHandlerNeverServesOutsideRoot(t *testing.T) {
	t.Parallel()

	h := server.Handler(testDispatcher(t))

	for _, target := range []string{
		"/../../../../etc/passwd",
		"/..%2f..%2fetc/passwd",
		"/.%2e/secret",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.NotEqual(t, http.StatusOK, w.Code, "target %q", target)
		assert.NotContains(t, w.Body.String(), "root:", "target %q", target)
	}
}
