// Package module defines the contract API modules satisfy and a bootstrap registry for their ports
package module

import (
	phttp "ingestlab/internal/platform/net/http"
)

// Module mounts routes and exposes ports for cross wiring
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
