package httpkit

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perrs "ingestlab/internal/platform/errors"
)

// TokenFunc resolves a bearer token to an api client id
type TokenFunc func(token string) (clientID string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// StaticKeys resolves tokens against a fixed client -> key table
// every key is compared so timing does not reveal which client matched
func StaticKeys(keys map[string]string) TokenFunc {
	return func(token string) (string, error) {
		var match string
		for client, key := range keys {
			if key == "" {
				continue
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
				match = client
			}
		}
		if match == "" {
			return "", perrs.Unauthorizedf("unknown api key")
		}
		return match, nil
	}
}

// Parse extracts the client id from an Authorization Bearer token
// returns unauthorized when the header is missing, malformed, or the parser rejects it
func (p *Port) Parse(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	if s == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	const prefix = "bearer"
	if !strings.HasPrefix(strings.ToLower(s), prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// slice after "Bearer" (no trailing space required), then trim any spaces before token
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}

	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	cid, err := p.parse(raw)
	if err != nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return cid, nil
}
