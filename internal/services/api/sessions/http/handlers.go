// Package http provides http transport for sessions
package http

import (
	stdhttp "net/http"

	"ingestlab/internal/modkit/httpkit"
	"ingestlab/internal/platform/net/http/bind"
	"ingestlab/internal/services/api/sessions/domain"
)

// Register mounts the router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PostJSON[domain.UpdateInput](r, "/{id}/updates", h.update)
	httpkit.PostJSON[domain.RecommendationsInput](r, "/{id}/recommendations", h.recommend)
	httpkit.Get(r, "/{id}/emissions", h.emissions)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /sessions Sessions create
// @Summary Open a configuration session
// @Tags sessions
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput false "Initial partial"
// @Success 201 {object} domain.SessionView "created"
// @Failure 400 {object} httpkit.Envelope "bad payload"
// @Router /sessions [post]
func (h *handlers) create(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.CreateInput](r, bind.JSONOptions{
		MaxBytes:        1 << 16,
		DisallowUnknown: true,
		AllowEmptyBody:  true,
	})
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route GET /sessions/{id} Sessions get
// @Summary Current session configuration
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.SessionView "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	ctx, id := httpkit.SessionScope(r, "id")
	return h.svc.Get(ctx, id)
}

// swagger:route POST /sessions/{id}/updates Sessions update
// @Summary Reconcile a partial configuration update
// @Description Updates are applied in submission order. A user or system update arriving within the assistant priority window is dropped and reported with applied=false.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.UpdateResult "ok"
// @Failure 400 {object} httpkit.Envelope "bad payload"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/{id}/updates [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	ctx, id := httpkit.SessionScope(r, "id")
	return h.svc.Update(ctx, id, in)
}

// swagger:route POST /sessions/{id}/recommendations Sessions recommend
// @Summary Apply analyzer recommendations as an assistant update
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.RecommendationsInput true "Recommendations"
// @Success 200 {object} domain.UpdateResult "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/{id}/recommendations [post]
func (h *handlers) recommend(r *stdhttp.Request, in domain.RecommendationsInput) (any, error) {
	ctx, id := httpkit.SessionScope(r, "id")
	return h.svc.Recommend(ctx, id, in.Recommendations)
}

// swagger:route GET /sessions/{id}/emissions Sessions emissions
// @Summary Settled configurations emitted by the session, oldest first
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.EmissionsOutput "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/{id}/emissions [get]
func (h *handlers) emissions(r *stdhttp.Request) (any, error) {
	ctx, id := httpkit.SessionScope(r, "id")
	return h.svc.Emissions(ctx, id)
}

// swagger:route DELETE /sessions/{id} Sessions delete
// @Summary Close a session
// @Tags sessions
// @Param id path string true "Session id"
// @Success 204 "closed"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessions/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	ctx, id := httpkit.SessionScope(r, "id")
	if err := h.svc.Delete(ctx, id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
