// Package swaggerkit serves Swagger UI and the OpenAPI document for the API
package swaggerkit

import (
	"net/http"

	phttp "ingestlab/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options control the docs mount
type Options struct {
	Enabled bool
	// BaseURL is the server url in the document, default /api/v1
	BaseURL string
	// TitleSuffix is appended to the document title, e.g. "(staging)"
	TitleSuffix string
}

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json when enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.BaseURL == "" {
		o.BaseURL = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
