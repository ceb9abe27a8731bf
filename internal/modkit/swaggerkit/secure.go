package swaggerkit

import (
	"strings"
	"sync"
)

// secured maps path to the lower case methods that sit behind bearer auth
var secured = struct {
	mu  sync.RWMutex
	ops map[string]map[string]bool
}{ops: map[string]map[string]bool{}}

func securedKey(path, method string) (string, string) {
	return "/" + strings.Trim(path, "/"), strings.ToLower(method)
}

// MarkSecurePath records that method on path needs a bearer token
// path is relative to the api base, e.g. /sessions/{id}
func MarkSecurePath(path, method string) {
	p, m := securedKey(path, method)
	secured.mu.Lock()
	defer secured.mu.Unlock()
	if secured.ops[p] == nil {
		secured.ops[p] = map[string]bool{}
	}
	secured.ops[p][m] = true
}

// IsSecure reports whether method on path was marked
func IsSecure(path, method string) bool {
	p, m := securedKey(path, method)
	secured.mu.RLock()
	defer secured.mu.RUnlock()
	return secured.ops[p][m]
}

// applySecurity declares the bearer scheme and tags marked operations with it and a 401
func applySecurity(spec map[string]any) {
	secured.mu.RLock()
	defer secured.mu.RUnlock()
	if len(secured.ops) == 0 {
		return
	}

	child(child(spec, "components"), "securitySchemes")["bearerAuth"] = map[string]any{
		"type":        "http",
		"scheme":      "bearer",
		"description": "API key issued per client",
	}
	eachOperation(spec, func(path, method string, op map[string]any) {
		if !secured.ops[path][method] {
			return
		}
		op["security"] = []any{map[string]any{"bearerAuth": []any{}}}
		resps := child(op, "responses")
		if _, ok := resps["401"]; !ok {
			resps["401"] = map[string]any{
				"description": "Unauthorized",
				"content": map[string]any{
					"application/json": map[string]any{"schema": map[string]any{"$ref": errorSchemaRef}},
				},
			}
		}
	})
}
