package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ingestlab/internal/platform/config"
	phttp "ingestlab/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func status(code int) phttp.Handler {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
}

func TestAdaptChi_MethodsAndNesting(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Stack", "root")
			next.ServeHTTP(w, req)
		})
	})

	r.Route("/sessions", func(sr phttp.Router) {
		sr.Post("/", status(http.StatusCreated))
		sr.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.WriteString(w, phttp.Param(req, "id"))
		})
		sr.Put("/{id}", status(http.StatusAccepted))
		sr.Patch("/{id}", status(http.StatusAccepted))
		sr.Delete("/{id}", status(http.StatusNoContent))
		sr.Group(func(g phttp.Router) {
			g.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					w.Header().Set("X-Group", "yes")
					next.ServeHTTP(w, req)
				})
			})
			g.Get("/{id}/emissions", status(http.StatusOK))
		})
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))

	h := r.Mux()
	assert.Equal(t, http.StatusCreated, serve(t, h, http.MethodPost, "/sessions/").Code)
	assert.Equal(t, http.StatusAccepted, serve(t, h, http.MethodPut, "/sessions/s1").Code)
	assert.Equal(t, http.StatusAccepted, serve(t, h, http.MethodPatch, "/sessions/s1").Code)
	assert.Equal(t, http.StatusNoContent, serve(t, h, http.MethodDelete, "/sessions/s1").Code)
	assert.Equal(t, http.StatusTeapot, serve(t, h, http.MethodGet, "/raw").Code)

	got := serve(t, h, http.MethodGet, "/sessions/s1")
	assert.Equal(t, "s1", got.Body.String())
	assert.Equal(t, "root", got.Header().Get("X-Stack"))
	assert.Empty(t, got.Header().Get("X-Group"))

	em := serve(t, h, http.MethodGet, "/sessions/s1/emissions")
	assert.Equal(t, http.StatusOK, em.Code)
	assert.Equal(t, "yes", em.Header().Get("X-Group"))
}

func TestMountProfiler(t *testing.T) {
	off := chi.NewRouter()
	phttp.MountProfiler(phttp.AdaptChi(off), "/debug", false)
	assert.Equal(t, http.StatusNotFound, serve(t, off, http.MethodGet, "/debug/pprof/").Code)

	on := chi.NewRouter()
	phttp.MountProfiler(phttp.AdaptChi(on), "/debug", true)
	assert.Equal(t, http.StatusOK, serve(t, on, http.MethodGet, "/debug/pprof/").Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Setenv("SRVTEST_API_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New().Prefix("SRVTEST_"))
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ln, err := net.Listen("tcp", srv.Addr())
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(context.Background(), ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-errc)
}
