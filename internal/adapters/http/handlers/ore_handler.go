package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

// OREHandler exposes the roll service over HTTP.
type OREHandler struct {
	svc             ports.RollService
	presenter       ports.Presenter
	defaultTemplate string
}

// NewOREHandler creates an OREHandler. presenter and defaultTemplate serve
// render requests that name a template explicitly.
func NewOREHandler(svc ports.RollService, presenter ports.Presenter, defaultTemplate string) *OREHandler {
	return &OREHandler{svc: svc, presenter: presenter, defaultTemplate: defaultTemplate}
}

// Roll handles POST /api/v1/ore/rolls.
func (h *OREHandler) Roll(w http.ResponseWriter, r *http.Request) {
	var req dto.RollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rolled, err := h.svc.Roll(r.Context(), req.ToPort())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToRollResponse(rolled))
}

// RollBatch handles POST /api/v1/ore/rolls/batch. Per-roll failures are
// reported inside the 200 response.
func (h *OREHandler) RollBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.RollBatch(r.Context(), req.ToPort())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBatchRollResponse(result))
}

// Parse handles POST /api/v1/ore/parse.
func (h *OREHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req dto.ParseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.svc.ParseRawRoll(req.RawRolls, req.Flavor())
	writeJSON(w, r, http.StatusOK, dto.ToRollResultResponse(result))
}

// Render handles POST /api/v1/ore/render.
func (h *OREHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req dto.RenderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.svc.ParseRawRoll(req.RawRolls, req.Flavor())

	var (
		content string
		err     error
	)
	tmpl := req.Template
	if tmpl == "" || tmpl == h.defaultTemplate {
		tmpl = h.defaultTemplate
		content, err = h.svc.RenderContent(r.Context(), result)
	} else {
		content, err = h.presenter.Render(r.Context(), tmpl, result)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RenderResponse{Template: tmpl, Content: content})
}
