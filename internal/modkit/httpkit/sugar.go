package httpkit

import "net/http"

// Get mounts a bodiless GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// Post mounts a POST that reads no body
func Post(r Router, path string, h func(*http.Request) (any, error)) { r.Post(path, Call(h)) }

// Delete mounts a bodiless DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) { r.Delete(path, Call(h)) }

// PostJSON mounts a POST whose body binds to T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}
