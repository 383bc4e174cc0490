package module

import "matchmaker/internal/services/templates/domain"

// Ports exposes the templates service for cross-module wiring
type Ports struct {
	Templates domain.ServicePort
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
