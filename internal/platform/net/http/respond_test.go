package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "ingestlab/internal/platform/errors"
	pnet "ingestlab/internal/platform/net"
	phttp "ingestlab/internal/platform/net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, resp phttp.Response) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/sessions/s1", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-9", "s1"))
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return resp })(rec, req)

	var env phttp.Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestResponse_Success(t *testing.T) {
	rec, env := render(t, phttp.Created(map[string]string{"id": "s1"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "Created", env.Status)
	assert.Equal(t, "req-9", env.RequestID)
	assert.Equal(t, map[string]any{"id": "s1"}, env.Data)
	assert.Zero(t, env.Code)

	rec, env = render(t, phttp.Response{Body: "x", Header: http.Header{"X-Session": {"s1"}}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", env.Status)
	assert.Equal(t, "s1", rec.Header().Get("X-Session"))
}

func TestResponse_NoContent(t *testing.T) {
	rec, _ := render(t, phttp.NoContent())
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestResponse_Errors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   perr.ErrorCode
		msg    string
	}{
		{perr.NotFoundf("session %s not found", "s1"), http.StatusNotFound, perr.ErrorCodeNotFound, "session s1 not found"},
		{perr.InvalidArgf("bad source"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument, "bad source"},
		{errors.New("boom"), http.StatusInternalServerError, perr.ErrorCodeUnknown, "boom"},
	}
	for _, tc := range cases {
		rec, env := render(t, phttp.Error(tc.err))
		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, tc.status, env.StatusCode)
		assert.Equal(t, tc.code, env.Code)
		assert.Equal(t, tc.msg, env.Error)
		assert.Equal(t, "req-9", env.RequestID)
		assert.Nil(t, env.Data)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.WriteError(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil), perr.Unauthorizedf("missing key"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"missing key"`)
}
