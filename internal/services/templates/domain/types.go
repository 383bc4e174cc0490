// Package domain holds message template types and DTOs
package domain

import (
	"context"
	"time"

	users "matchmaker/internal/services/users/domain"
)

// Template is one versioned message template. Content uses Go text/template
// syntax over the intro params map
type Template struct {
	ID        int64      `json:"id"`
	Key       string     `json:"key"`
	Version   int        `json:"version"`
	Locale    string     `json:"locale"`
	Content   string     `json:"content"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateInput registers a new template version
type CreateInput struct {
	Key      string `json:"key" validate:"required,min=1,max=100"`
	Version  int    `json:"version" validate:"omitempty,gt=0"`
	Locale   string `json:"locale" validate:"omitempty,max=10"`
	Content  string `json:"content" validate:"required,min=1"`
	IsActive *bool  `json:"is_active"`
}

// UpdateInput mutates an existing version in place
type UpdateInput struct {
	Locale   *string `json:"locale" validate:"omitempty,max=10"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	IsActive *bool   `json:"is_active"`
}

// ServicePort is the templates contract other modules bind against
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Template, error)
	Get(ctx context.Context, key string, version int) (Template, error)
	List(ctx context.Context, activeOnly bool) ([]Template, error)
	Update(ctx context.Context, key string, version int, in UpdateInput) (Template, error)

	// RenderIntro renders the template for a requester/candidate pair.
	// version <= 0 selects the latest active version of key
	RenderIntro(ctx context.Context, key string, version int, requester, candidate users.Profile) (Rendered, error)
}

// Rendered is the outcome of a render, carrying the version actually used
type Rendered struct {
	Key     string
	Version int
	Message string
}
