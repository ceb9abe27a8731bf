// Package module wires the mock analyzer into the API using modkit
package module

import (
	"context"
	"time"

	modkit "ingestlab/internal/modkit"
	"ingestlab/internal/modkit/httpkit"
	"ingestlab/internal/platform/logger"

	ahttp "ingestlab/internal/services/api/analysis/http"
	arepo "ingestlab/internal/services/api/analysis/repo"
	asvc "ingestlab/internal/services/api/analysis/service"
)

// Module implements the analysis API module
type Module struct {
	modkit.Base
	ports Ports
	svc   *asvc.Svc
}

// New constructs the analysis module
// history is kept in postgres when deps carry a TxRunner
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	base := modkit.NewBase("analysis", "/analysis", opts...)
	injected := modkit.Injected[Ports](base)

	var history arepo.Repo = arepo.Noop{}
	if deps.PG != nil {
		history = arepo.NewHistory(deps.PG, deps.Cfg.MayInt("ANALYSIS_HISTORY_KEEP", 10000))
		ctx, cancel := context.WithTimeout(context.Background(), deps.Cfg.MayDuration("ANALYSIS_SCHEMA_TIMEOUT", 5*time.Second))
		if err := history.EnsureSchema(ctx); err != nil {
			logger.Named(base.Name()).Warn().Err(err).Msg("analysis history schema not ensured")
		}
		cancel()
	}

	return &Module{Base: base, ports: injected, svc: asvc.New(history, injected.Sessions)}
}

// MountRoutes mounts the analyze and history routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sr httpkit.Router) { ahttp.Register(sr, m.svc) })
}
