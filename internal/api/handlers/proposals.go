package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharktalent/backend/internal/api/httpx"
	"github.com/sharktalent/backend/internal/models"
	"github.com/sharktalent/backend/internal/services"
)

type ProposalHandler struct {
	Proposals *services.ProposalService
}

func NewProposalHandler(proposals *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{Proposals: proposals}
}

func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var in services.ProposalInput
	if err := decode(r, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Proposals.Create(r.Context(), c, in)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":     "Proposal submitted successfully",
		"proposal_id": p.ID,
	})
}

func (h *ProposalHandler) ListForProject(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	items, err := h.Proposals.ListForProject(r.Context(), c, chi.URLParam(r, "projectId"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	if items == nil {
		items = []models.ProposalWithFreelancer{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"proposals": items})
}

func (h *ProposalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	page, perPage := pageParams(r)
	items, pg, err := h.Proposals.ListMine(r.Context(), c, page, perPage)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	if items == nil {
		items = []models.ProposalWithProject{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"proposals":    items,
		"total":        pg.Total,
		"pages":        pg.Pages,
		"current_page": pg.CurrentPage,
	})
}

func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	d, err := h.Proposals.Get(r.Context(), c, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

func (h *ProposalHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Proposals.SetStatus(r.Context(), c, chi.URLParam(r, "id"), req.Status); err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Proposal " + req.Status + " successfully"})
}
