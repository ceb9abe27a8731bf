package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	perr "ingestlab/internal/platform/errors"

	"ingestlab/internal/services/api/docs"
)

// docReader is swapped by tests to feed a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const errorSchemaRef = "#/components/schemas/ErrorResponse"

// serveDocJSON serves the generated document lifted to OAS 3.0.3 with the shared error responses filled in
func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, o.BaseURL)
		if o.TitleSuffix != "" {
			info := child(spec, "info")
			title, _ := info["title"].(string)
			info["title"] = strings.TrimSpace(title + " " + o.TitleSuffix)
		}
		child(child(spec, "components"), "schemas")["ErrorResponse"] = errorSchema()

		eachOperation(spec, func(_, _ string, op map[string]any) {
			defaultResponse(op, http.StatusBadRequest, perr.ErrorCodeValidation, "fileName is a required field")
			defaultResponse(op, http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered")
		})
		applySecurity(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers lifts swagger 2 and OAS 3.1 to 3.0.3, which the bundled UI renders
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	spec["openapi"] = "3.0.3"
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// errorSchema mirrors the envelope written for failed requests
func errorSchema() map[string]any {
	prop := func(typ string) map[string]any { return map[string]any{"type": typ} }
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"request_id":  prop("string"),
		},
		"required": []any{"status_code", "status", "code", "error"},
	}
}

// child returns m[key] as a map, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// eachOperation calls fn for every method of every path
func eachOperation(spec map[string]any, fn func(path, method string, op map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for path, node := range paths {
		methods, _ := node.(map[string]any)
		for method, op := range methods {
			if o, ok := op.(map[string]any); ok {
				fn(path, method, o)
			}
		}
	}
}

// defaultResponse adds an error envelope response for status unless the operation documents its own
func defaultResponse(op map[string]any, status int, code perr.ErrorCode, msg string) {
	resps := child(op, "responses")
	key := strconv.Itoa(status)
	if _, ok := resps[key]; ok {
		return
	}
	text := http.StatusText(status)
	resps[key] = map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": errorSchemaRef},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        code,
					"error":       msg,
					"request_id":  "api-7f3c/000001",
				},
			},
		},
	}
}
