// Package api provides the HTTP API for the application
package api

import (
	"ingestlab/internal/platform/config"
	"ingestlab/internal/platform/logger"
	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/platform/net/middleware"
	"ingestlab/internal/platform/store"

	"ingestlab/internal/modkit"
	"ingestlab/internal/modkit/httpkit"
	"ingestlab/internal/modkit/module"
	"ingestlab/internal/modkit/swaggerkit"

	analysismod "ingestlab/internal/services/api/analysis/module"
	metamod "ingestlab/internal/services/api/meta/module"
	sessionsmod "ingestlab/internal/services/api/sessions/module"
	ssvc "ingestlab/internal/services/api/sessions/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Publisher receives settled configs keyed by session id, nil disables it
	Publisher ssvc.Publisher

	// APIKeys maps client id to bearer key, empty leaves sessions and analysis open
	APIKeys map[string]string

	// Stack tunes CORS, throttling and timeouts for /api/v1
	Stack httpkit.StackOptions

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// the returned func releases live sessions and should run on shutdown
func Mount(r phttp.Router, opt Options) func() {
	// load balancer probe, answered before routing
	r.Use(middleware.Heartbeat("/healthz"))

	// shared deps for modules
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		// typed nils must not reach modules as non-nil interfaces
		if opt.Store.PG != nil {
			deps.PG = opt.Store.PG
		}
		if opt.Store.CH != nil {
			deps.CH = opt.Store.CH
		}
	}

	// sessions owns the config sync engine and exports it to analysis
	sessions := sessionsmod.New(
		deps,
		modkit.WithPorts(sessionsmod.Ports{Publisher: opt.Publisher}),
	)
	analysis := analysismod.New(
		deps,
		modkit.WithPorts(analysismod.Ports{
			Sessions: module.MustPortsOf[sessionsmod.Exports](sessions).Sessions,
		}),
	)

	reg := module.NewRegistry()
	public := []module.Module{metamod.New(deps, reg.Names)}
	guarded := []module.Module{sessions, analysis}

	var port middleware.AuthPort
	if len(opt.APIKeys) > 0 {
		port = httpkit.NewPortFunc(httpkit.StaticKeys(opt.APIKeys))
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		swaggerkit.Mount(r, swaggerkit.Options{
			Enabled:     opt.EnableSwagger,
			TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
		})
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range public {
			reg.Add(m)
			m.MountRoutes(api)
		}
		httpkit.Protected(api, port, func(pr httpkit.Router) {
			for _, m := range guarded {
				reg.Add(m)
				m.MountRoutes(pr)
			}
		})
	})

	return sessions.Close
}
