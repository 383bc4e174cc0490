package module

import "matchmaker/internal/services/users/domain"

// Ports exposes the users service for cross-module wiring
type Ports struct {
	Users domain.ServicePort
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
