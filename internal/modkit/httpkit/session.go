package httpkit

import (
	"context"
	"net/http"

	"ingestlab/internal/platform/logger"
	pnet "ingestlab/internal/platform/net"
)

// SessionScope reads the session id path param and tags the request context with it
// logger.C and pnet.SessionID see the session on everything downstream
func SessionScope(r *http.Request, param string) (context.Context, string) {
	id := Param(r, param)
	ctx := r.Context()
	if id == "" {
		return ctx, ""
	}
	ctx = pnet.WithRequest(ctx, "", id)
	ctx = logger.WithRequest(ctx, "", id)
	return ctx, id
}
