package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "ingestlab/internal/platform/errors"
	pnet "ingestlab/internal/platform/net"
	"ingestlab/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
)

type portFunc func(*http.Request) (string, error)

func (f portFunc) Parse(r *http.Request) (string, error) { return f(r) }

func runAuth(p middleware.AuthPort) (code int, client string, failed error) {
	h := middleware.Auth(p, func(w http.ResponseWriter, _ *http.Request, err error) {
		failed = err
		w.WriteHeader(perr.HTTPStatus(err))
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client = pnet.ClientID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	return rec.Code, client, failed
}

func TestAuth_NilPortIsOpen(t *testing.T) {
	code, client, failed := runAuth(nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, client)
	assert.NoError(t, failed)
}

func TestAuth_RejectsThroughFail(t *testing.T) {
	code, client, failed := runAuth(portFunc(func(*http.Request) (string, error) {
		return "", perr.Unauthorizedf("unknown api key")
	}))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Empty(t, client)
	assert.True(t, perr.IsCode(failed, perr.ErrorCodeUnauthorized))
}

func TestAuth_StampsClient(t *testing.T) {
	code, client, _ := runAuth(portFunc(func(*http.Request) (string, error) { return "uploader", nil }))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "uploader", client)
}
