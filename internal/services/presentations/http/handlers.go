// Package http provides http transport for presentations and plans
package http

import (
	stdhttp "net/http"
	"time"

	"matchmaker/internal/modkit/httpkit"
	"matchmaker/internal/services/presentations/domain"
	svc "matchmaker/internal/services/presentations/service"
)

// Register mounts the /presentations subtree
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/pending", h.pending)
	httpkit.PostJSONOK[domain.DecideInput](r, "/{id}/decide", h.decide)
}

// RegisterPlans mounts the /plans subtree
func RegisterPlans(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.PlanCreateInput](r, "/", h.createPlan)
	httpkit.Get(r, "/", h.listPlans)
	httpkit.Get(r, "/{id}", h.getPlan)
	httpkit.Post(r, "/{id}/fill", h.fillPlan)
	httpkit.PostJSONOK[domain.PresentPlanInput](r, "/{id}/present", h.presentPlan)
}

// RegisterUserRoutes mounts per-user presentation routes on the api tree
func RegisterUserRoutes(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.PresentInput](r, "/users/{id}/present", h.present)
	httpkit.Get(r, "/users/{id}/presentations", h.forUser)
}

type handlers struct{ svc svc.Service }

// @Summary Present a candidate to a user
// @Tags Presentations
// @Accept json
// @Produce json
// @Param id path int true "Requester id"
// @Param payload body domain.PresentInput true "Candidate and template"
// @Success 201 {object} domain.Presentation
// @Router /users/{id}/present [post]
func (h *handlers) present(r *stdhttp.Request, in domain.PresentInput) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Present(r.Context(), id, in)
}

// @Summary Pending deliveries, oldest first
// @Tags Presentations
// @Produce json
// @Param limit query int false "Limit"
// @Success 200 {array} domain.Presentation
// @Router /presentations/pending [get]
func (h *handlers) pending(r *stdhttp.Request) (any, error) {
	limit, err := httpkit.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.ListPending(r.Context(), limit)
}

// @Summary Decide a pending presentation
// @Tags Presentations
// @Accept json
// @Produce json
// @Param id path int true "Presentation id"
// @Param payload body domain.DecideInput true "Outcome"
// @Success 200 {object} domain.Presentation
// @Router /presentations/{id}/decide [post]
func (h *handlers) decide(r *stdhttp.Request, in domain.DecideInput) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	outcome, err := domain.ParseOutcome(in.Outcome)
	if err != nil {
		return nil, err
	}
	return h.svc.Decide(r.Context(), id, outcome)
}

// @Summary Presentations where a user played a role
// @Tags Presentations
// @Produce json
// @Param id path int true "User id"
// @Param role query string true "requester or candidate"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} domain.Presentation
// @Router /users/{id}/presentations [get]
func (h *handlers) forUser(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		return nil, err
	}
	offset, err := httpkit.QueryInt(r, "offset", 0)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.ListForUser(r.Context(), id, role, offset, limit)
}

// @Summary Open a curated plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param payload body domain.PlanCreateInput true "Plan"
// @Success 201 {object} domain.Plan
// @Router /plans [post]
func (h *handlers) createPlan(r *stdhttp.Request, in domain.PlanCreateInput) (any, error) {
	return h.svc.CreatePlan(r.Context(), in)
}

// @Summary List plans, newest first
// @Tags Plans
// @Produce json
// @Success 200 {array} domain.Plan
// @Router /plans [get]
func (h *handlers) listPlans(r *stdhttp.Request) (any, error) {
	return h.svc.ListPlans(r.Context())
}

// @Summary Get a plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan id"
// @Success 200 {object} domain.Plan
// @Router /plans/{id} [get]
func (h *handlers) getPlan(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.GetPlan(r.Context(), id)
}

// @Summary Preview candidates for every active user under a plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan id"
// @Param per_user_limit query int false "Candidates per user"
// @Param cooldown_days query int false "Exclude candidates presented within this many days"
// @Success 200 {array} domain.PlanFill
// @Router /plans/{id}/fill [post]
func (h *handlers) fillPlan(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	perUser, err := httpkit.QueryInt(r, "per_user_limit", 0)
	if err != nil {
		return nil, err
	}
	cooldownDays, err := httpkit.QueryInt(r, "cooldown_days", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.FillPlan(r.Context(), id, perUser, time.Duration(cooldownDays)*24*time.Hour)
}

// @Summary Commit a plan fill into presentations
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path int true "Plan id"
// @Param payload body domain.PresentPlanInput true "Template and limits"
// @Success 200 {object} domain.PlanCommit
// @Router /plans/{id}/present [post]
func (h *handlers) presentPlan(r *stdhttp.Request, in domain.PresentPlanInput) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.PresentPlan(r.Context(), id, in)
}
