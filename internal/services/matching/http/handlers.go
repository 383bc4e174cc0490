// Package http provides http transport for matching
package http

import (
	stdhttp "net/http"
	"time"

	"matchmaker/internal/modkit/httpkit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/services/matching/domain"
	users "matchmaker/internal/services/users/domain"
)

// Register mounts match endpoints on the given router
func Register(r httpkit.Router, svc domain.ServicePort) {
	h := &handlers{svc: svc}

	httpkit.PostJSONOK[domain.SingleMatchInput](r, "/single", h.single)
	httpkit.Get(r, "/bulk", h.bulk)
}

// RegisterCandidates mounts the per-user candidate query on the users tree
func RegisterCandidates(r httpkit.Router, svc domain.ServicePort, up domain.UserPort) {
	h := &handlers{svc: svc, users: up}
	httpkit.Get(r, "/users/{id}/candidates", h.candidates)
}

type handlers struct {
	svc   domain.ServicePort
	users domain.UserPort
}

// @Summary Ranked mutual candidates for a user
// @Tags Matching
// @Produce json
// @Param id path int true "User id"
// @Param limit query int false "Max results"
// @Param cooldown_days query int false "Exclude candidates presented within this many days"
// @Success 200 {array} domain.CandidateResult
// @Router /users/{id}/candidates [get]
func (h *handlers) candidates(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 20)
	if err != nil {
		return nil, err
	}
	cooldownDays, err := httpkit.QueryInt(r, "cooldown_days", 0)
	if err != nil {
		return nil, err
	}
	if limit < 0 || cooldownDays < 0 {
		return nil, perr.InvalidArgf("limit and cooldown_days must be non-negative")
	}

	requester, err := h.users.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	results, err := h.svc.MutualCandidates(r.Context(), requester, time.Duration(cooldownDays)*24*time.Hour, limit)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// @Summary Match one user against the pool
// @Tags Matching
// @Accept json
// @Produce json
// @Param payload body domain.SingleMatchInput true "Subject selector"
// @Success 200 {object} domain.SingleMatchOut
// @Router /match/single [post]
func (h *handlers) single(r *stdhttp.Request, in domain.SingleMatchInput) (any, error) {
	if in.UserID == nil && in.Nickname == nil {
		return nil, perr.InvalidArgf("user_id or nickname is required")
	}

	var id int64
	var nick string
	if in.UserID != nil {
		id = *in.UserID
	}
	if in.Nickname != nil {
		nick = *in.Nickname
	}

	subject, candidates, err := h.svc.SingleMatch(r.Context(), id, nick)
	if err != nil {
		return nil, err
	}
	out := domain.SingleMatchOut{
		Subject:    users.ToOut(subject),
		Candidates: make([]users.Out, 0, len(candidates)),
	}
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, users.ToOut(c))
	}
	return out, nil
}

// @Summary Greedy one-shot matching across all active users
// @Tags Matching
// @Produce json
// @Success 200 {array} domain.AssignmentOut
// @Router /match/bulk [get]
func (h *handlers) bulk(r *stdhttp.Request) (any, error) {
	assignments, err := h.svc.BulkMatch(r.Context())
	if err != nil {
		return nil, err
	}
	out := make([]domain.AssignmentOut, 0, len(assignments))
	for _, a := range assignments {
		row := domain.AssignmentOut{Subject: users.ToOut(a.Subject)}
		if a.Recommended != nil {
			o := users.ToOut(*a.Recommended)
			row.Recommended = &o
		}
		out = append(out, row)
	}
	return out, nil
}
