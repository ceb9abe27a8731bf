// Package httpkit is the handler and routing surface modules build on
// modules import it instead of the platform http package
package httpkit

import (
	"net/http"

	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/platform/net/http/bind"
)

type (
	// Envelope is the JSON body every enveloped endpoint returns
	Envelope = phttp.Envelope
	// Response is a return style handler result
	Response = phttp.Response
	// Handler is a plain handler func
	Handler = phttp.Handler
	// Router is the routing seam
	Router = phttp.Router
)

// Created is a 201 carrying data
func Created(data any) Response { return phttp.Created(data) }

// NoContent is a bodiless 204
func NoContent() Response { return phttp.NoContent() }

// Call adapts a bodiless handler, a returned Response is written as is and anything else is a 200
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// JSON binds and validates the body into T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return phttp.Error(err)
		}
		return result(fn(r, in))
	})
}

func result(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return phttp.OK(out)
}

// Param is the named path parameter
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }
