// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/version"
	modkit "ingestlab/internal/modkit"
	"ingestlab/internal/modkit/httpkit"

	metahttp "ingestlab/internal/services/api/meta/http"
)

// Module serves health, readiness and build info
type Module struct {
	modkit.Base
	deps metahttp.Deps
}

// New constructs the meta module
// modules lists the mounted module names for /meta/service, it may be nil
func New(deps modkit.Deps, modules func() []string, opts ...modkit.Option) *Module {
	d := metahttp.Deps{
		ServiceName: version.ServiceName,
		Sync:        configsync.OptionsFromConfig(deps.Cfg),
		Modules:     modules,
	}
	// typed nils must not reach the checks as non-nil pingers
	if deps.PG != nil {
		d.Checks = append(d.Checks, metahttp.Check{Name: "pg", Target: deps.PG})
	}
	if deps.CH != nil {
		d.Checks = append(d.Checks, metahttp.Check{Name: "ch", Target: deps.CH})
	}
	return &Module{Base: modkit.NewBase("meta", "/meta", opts...), deps: d}
}

// MountRoutes mounts the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sr httpkit.Router) { metahttp.Register(sr, m.deps) })
}

// Ports is nil, meta exports nothing
func (m *Module) Ports() any { return nil }
