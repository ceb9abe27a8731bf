package middleware

import (
	"net/http"

	pnet "ingestlab/internal/platform/net"
)

// AuthPort resolves the calling api client from a request
type AuthPort interface {
	Parse(r *http.Request) (clientID string, err error)
}

// Auth rejects requests the port cannot resolve and stamps the client id otherwise
// a nil port lets everything through, fail renders the rejection
func Auth(p AuthPort, fail func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid, err := p.Parse(r)
			if err != nil {
				fail(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithClient(r.Context(), cid)))
		})
	}
}
