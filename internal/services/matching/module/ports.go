package module

import "matchmaker/internal/services/matching/domain"

// Ports are the collaborators matching needs at construction time
type Ports struct {
	Users   domain.UserPort
	History domain.HistoryPort
}

// Out exposes the matching service for cross-module wiring
type Out struct {
	Matching domain.ServicePort
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
