package module

import (
	"ingestlab/internal/services/api/sessions/domain"
	"ingestlab/internal/services/api/sessions/service"
)

// Ports are injected into the sessions module
type Ports struct {
	// Publisher announces settled configurations, nil disables it
	Publisher service.Publisher
}

// Exports are the ports other modules can look up by name
type Exports struct {
	Sessions domain.ServicePort
}

// Ports returns the module exports
func (m *Module) Ports() any { return Exports{Sessions: m.svc} }
