// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"matchmaker/internal/modkit/httpkit"
	"matchmaker/internal/services/users/domain"
	svc "matchmaker/internal/services/users/service"
)

// Register mounts user endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.deactivate)
	httpkit.PostJSONOK[domain.SearchInput](r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "User intake"
// @Success 201 {object} domain.Out
// @Router /users [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.ToOut(p), nil
}

// @Summary List active users
// @Tags Users
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} domain.Out
// @Router /users [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	offset, err := httpkit.QueryInt(r, "offset", 0)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 100)
	if err != nil {
		return nil, err
	}
	profiles, err := h.svc.List(r.Context(), offset, limit)
	if err != nil {
		return nil, err
	}
	return outs(profiles), nil
}

// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} domain.Out
// @Router /users/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return domain.ToOut(p), nil
}

// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param payload body domain.UpdateInput true "Partial update"
// @Success 200 {object} domain.Out
// @Router /users/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	p, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		return nil, err
	}
	return domain.ToOut(p), nil
}

// @Summary Deactivate a user
// @Tags Users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} map[string]bool
// @Router /users/{id} [delete]
func (h *handlers) deactivate(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Deactivate(r.Context(), id); err != nil {
		return nil, err
	}
	return map[string]bool{"deactivated": true}, nil
}

// @Summary Search users by criteria
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Criteria"
// @Success 200 {array} domain.Out
// @Router /users/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	profiles, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return outs(profiles), nil
}

func outs(profiles []domain.Profile) []domain.Out {
	out := make([]domain.Out, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, domain.ToOut(p))
	}
	return out
}
