// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/version"
	"ingestlab/internal/modkit/httpkit"

	"github.com/benbjohnson/clock"
)

// Pinger is satisfied by store handles that can probe their backend
type Pinger interface {
	Ping(context.Context) error
}

// Check names one backend probed by /meta/ready
type Check struct {
	Name   string
	Target any
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	Checks      []Check
	Sync        configsync.Options

	// Modules lists mounted module names, nil reports none
	Modules func() []string

	// Clock defaults to the wall clock
	Clock clock.Clock
	// ReadyTimeout bounds each backend probe, zero means 2s
	ReadyTimeout time.Duration
}

type handlers struct {
	deps    Deps
	started time.Time
}

// Register mounts the meta routes, uptime counts from this call
func Register(r httpkit.Router, d Deps) {
	if d.Clock == nil {
		d.Clock = clock.New()
	}
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, started: d.Clock.Now()}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/sync", h.sync)
}

func (h *handlers) stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"ingestlab-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is the outcome of one backend probe
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"` // ok fail unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes the running process
type ServiceResponse struct {
	Name    string   `json:"name"    example:"ingestlab-api"`
	Started string   `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules" example:"analysis,meta,sessions"`
}

// SyncResponse reports the config sync engine tuning and build info
type SyncResponse struct {
	PriorityWindowMs int64             `json:"priority_window_ms" example:"1000"`
	SpacingMs        int64             `json:"spacing_ms"         example:"50"`
	QuietMs          int64             `json:"quiet_ms"           example:"100"`
	Build            version.BuildInfo `json:"build"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.stamp(h.started),
		Now:     h.stamp(h.deps.Clock.Now()),
	}, nil
}

// @Summary Readiness probe with backend checks
// @Description Disabled backends are not listed and do not degrade readiness
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	checks := make([]ReadyCheck, len(h.deps.Checks))
	var wg sync.WaitGroup
	for i, c := range h.deps.Checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checks[i] = h.probe(r.Context(), c)
		}()
	}
	wg.Wait()

	overall := "ok"
	for _, c := range checks {
		switch {
		case c.Status == "fail":
			overall = "fail"
		case c.Status == "unknown" && overall == "ok":
			overall = "degraded"
		}
	}
	return ReadyResponse{Status: overall, Checks: checks, Now: h.stamp(h.deps.Clock.Now())}, nil
}

func (h *handlers) probe(ctx context.Context, c Check) ReadyCheck {
	p, ok := c.Target.(Pinger)
	if !ok {
		return ReadyCheck{Name: c.Name, Status: "unknown"}
	}
	ctx, cancel := context.WithTimeout(ctx, h.deps.ReadyTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: c.Name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: c.Name, Status: "ok"}
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info, uptime and mounted modules
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	mods := []string{}
	if h.deps.Modules != nil {
		mods = append(mods, h.deps.Modules()...)
	}
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.stamp(h.started),
		Uptime:  int64(h.deps.Clock.Since(h.started) / time.Second),
		Modules: mods,
	}, nil
}

// @Summary Config sync engine tuning and build
// @Tags Meta
// @Produce json
// @Success 200 type SyncResponse ok
// @Router /meta/sync [get]
func (h *handlers) sync(_ *http.Request) (any, error) {
	o := h.deps.Sync
	return SyncResponse{
		PriorityWindowMs: o.PriorityWindow.Milliseconds(),
		SpacingMs:        o.Spacing.Milliseconds(),
		QuietMs:          o.Quiet.Milliseconds(),
		Build:            version.Info(),
	}, nil
}
