// Package http provides http transport for analysis
package http

import (
	stdhttp "net/http"
	"strconv"

	"ingestlab/internal/modkit/httpkit"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"
	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/platform/net/http/bind"
	"ingestlab/internal/services/api/analysis/domain"
)

// maxRecent caps the history page
const maxRecent = 100

// Register mounts the router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	r.Post("/analyze", h.analyze)
	httpkit.Get(r, "/recent", h.recent)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /analysis/analyze Analysis analyze
// @Summary Characterize a document from its name, type and size
// @Description The result is fabricated; the same name and size always produce the same analysis. The body is not wrapped in the standard envelope.
// @Tags analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "File"
// @Success 200 {object} domain.AnalyzeResponse "ok"
// @Failure 400 {object} domain.AnalyzeResponse "bad payload"
// @Failure 404 {object} domain.AnalyzeResponse "unknown session"
// @Failure 500 {object} domain.AnalyzeResponse "analysis failed"
// @Router /analysis/analyze [post]
func (h *handlers) analyze(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	defer func() {
		if v := recover(); v != nil {
			log(r).Error().Interface("panic", v).Msg("analysis panicked")
			phttp.JSON(w, stdhttp.StatusInternalServerError, domain.AnalyzeResponse{Error: "analysis failed"})
		}
	}()

	in, err := bind.ParseJSON[domain.AnalyzeInput](r)
	if err != nil {
		fail(w, r, err)
		return
	}
	a, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	phttp.JSON(w, stdhttp.StatusOK, domain.AnalyzeResponse{Success: true, Analysis: &a})
}

// swagger:route GET /analysis/recent Analysis recent
// @Summary Recently analyzed documents, newest first
// @Tags analysis
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} domain.RecentRow "ok"
// @Failure 400 {object} httpkit.Envelope "bad limit"
// @Router /analysis/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	q := domain.RecentQuery{}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecent {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "limit must be between 1 and %d", maxRecent), "limit")
		}
		q.Limit = n
	}
	return h.svc.Recent(r.Context(), q)
}

func fail(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	msg := perr.WireFrom(err).Message
	if status >= stdhttp.StatusInternalServerError {
		log(r).Error().Err(err).Msg("analysis failed")
		msg = "analysis failed"
	}
	phttp.JSON(w, status, domain.AnalyzeResponse{Error: msg})
}

func log(r *stdhttp.Request) *logger.Logger {
	if l := logger.C(r.Context()); l != nil {
		return l
	}
	return logger.Named("analysis")
}
