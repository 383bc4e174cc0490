package module

import (
	matching "matchmaker/internal/services/matching/domain"
	"matchmaker/internal/services/presentations/domain"
	templates "matchmaker/internal/services/templates/domain"
)

// Ports are the collaborators presentations needs at construction time
type Ports struct {
	Users     matching.UserPort
	Templates templates.ServicePort
	Matching  matching.ServicePort
}

// Out exposes the presentations service for cross-module wiring
type Out struct {
	Presentations domain.ServicePort
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
