// Package module wires sessions into the API using modkit
package module

import (
	"context"

	modkit "ingestlab/internal/modkit"
	"ingestlab/internal/modkit/httpkit"
	"ingestlab/internal/platform/logger"

	shttp "ingestlab/internal/services/api/sessions/http"
	srepo "ingestlab/internal/services/api/sessions/repo"
	ssvc "ingestlab/internal/services/api/sessions/service"
)

// Module implements the sessions API module
type Module struct {
	modkit.Base
	svc *ssvc.Svc
}

// New constructs the sessions module
// clickhouse telemetry is enabled when deps carry a clickhouse handle
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	base := modkit.NewBase("sessions", "/sessions", opts...)
	injected := modkit.Injected[Ports](base)
	cfg := FromConfig(deps.Cfg)
	log := logger.Named(base.Name())

	so := ssvc.Options{
		Sync:          cfg.Sync,
		MaxSessions:   cfg.MaxSessions,
		HistorySize:   cfg.HistorySize,
		Publisher:     injected.Publisher,
		RetryAttempts: cfg.RetryAttempts,
		RetryBase:     cfg.RetryBase,
		Logger:        log,
	}
	if deps.CH != nil {
		tel, err := srepo.NewCH(deps.CH, cfg.Table)
		if err != nil {
			panic("sessions module: " + err.Error())
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.SchemaTimeout)
		if err := tel.EnsureSchema(ctx); err != nil {
			log.Warn().Err(err).Str("table", tel.Table()).Msg("telemetry schema not ensured")
		}
		cancel()
		so.Telemetry = tel
	}

	svc, err := ssvc.New(so)
	if err != nil {
		panic("sessions module: " + err.Error())
	}
	return &Module{Base: base, svc: svc}
}

// MountRoutes mounts the session routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sr httpkit.Router) { shttp.Register(sr, m.svc) })
}

// Close closes every live session
func (m *Module) Close() { m.svc.Close() }
