package module

import "ingestlab/internal/services/api/analysis/domain"

// Ports are injected into the analysis module
type Ports struct {
	// Sessions receives recommendations when a request names a session, nil disables it
	Sessions domain.SessionPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
