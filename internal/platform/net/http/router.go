package http

import "net/http"

// Handler is the plain handler func every route takes
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux is the handler serving this router's routes
	Mux() http.Handler
}
