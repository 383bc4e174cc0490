// Package http provides http transport for templates
package http

import (
	stdhttp "net/http"

	"matchmaker/internal/modkit/httpkit"
	"matchmaker/internal/services/templates/domain"
	svc "matchmaker/internal/services/templates/service"
)

// Register mounts template endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{key}/{version}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{key}/{version}", h.update)
}

type handlers struct{ svc svc.Service }

// @Summary Register a template version
// @Tags Templates
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Template"
// @Success 201 {object} domain.Template
// @Router /templates [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary List templates
// @Tags Templates
// @Produce json
// @Param active query bool false "Active only"
// @Success 200 {array} domain.Template
// @Router /templates [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	activeOnly := r.URL.Query().Get("active") == "true"
	return h.svc.List(r.Context(), activeOnly)
}

// @Summary Get a template version
// @Tags Templates
// @Produce json
// @Param key path string true "Template key"
// @Param version path int true "Template version"
// @Success 200 {object} domain.Template
// @Router /templates/{key}/{version} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	version, err := httpkit.ParamInt(r, "version")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), httpkit.Param(r, "key"), version)
}

// @Summary Update a template version
// @Tags Templates
// @Accept json
// @Produce json
// @Param key path string true "Template key"
// @Param version path int true "Template version"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Template
// @Router /templates/{key}/{version} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	version, err := httpkit.ParamInt(r, "version")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), httpkit.Param(r, "key"), version, in)
}
