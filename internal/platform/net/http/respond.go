// Package http holds the router seam, the chi adapter and the JSON envelope every endpoint answers with
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "ingestlab/internal/platform/errors"
	pnet "ingestlab/internal/platform/net"
)

// Envelope wraps every enveloped response body
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return style handlers produce
// a Body holding an error is written as an error envelope
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is a bodiless 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error lets the error code pick the status
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return style handler
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).Write(w, r) }
}

// Write renders the response, stamping the request id into the envelope
func (resp Response) Write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	env := Envelope{RequestID: pnet.RequestID(r.Context())}
	if err, ok := resp.Body.(error); ok && err != nil {
		wire := perr.WireFrom(err)
		env.StatusCode, env.Code, env.Error = perr.HTTPStatus(err), wire.Code, wire.Message
	} else {
		env.StatusCode, env.Data = resp.Status, resp.Body
		if env.StatusCode == 0 {
			env.StatusCode = stdhttp.StatusOK
		}
	}
	env.Status = stdhttp.StatusText(env.StatusCode)
	JSON(w, env.StatusCode, env)
}

// WriteError writes err as an error envelope outside a return style handler
func WriteError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	Error(err).Write(w, r)
}
