package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharktalent/backend/internal/api/httpx"
	"github.com/sharktalent/backend/internal/models"
	"github.com/sharktalent/backend/internal/services"
)

type ProjectHandler struct {
	Projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Projects: projects}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	items, pg, err := h.Projects.List(r.Context(), r.URL.Query().Get("status"), page, perPage)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	if items == nil {
		items = []models.ProjectWithClient{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"projects":     items,
		"total":        pg.Total,
		"pages":        pg.Pages,
		"current_page": pg.CurrentPage,
	})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var in services.ProjectInput
	if err := decode(r, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Projects.Create(r.Context(), c, in)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":    "Project created successfully",
		"project_id": p.ID,
	})
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var in services.ProjectUpdate
	if err := decode(r, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Projects.Update(r.Context(), c, chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Project updated successfully",
		"project": p,
	})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	if err := h.Projects.Delete(r.Context(), c, chi.URLParam(r, "id")); err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	page, perPage := pageParams(r)
	items, pg, err := h.Projects.ListMine(r.Context(), c, page, perPage)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	if items == nil {
		items = []models.ProjectWithCount{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"projects":     items,
		"total":        pg.Total,
		"pages":        pg.Pages,
		"current_page": pg.CurrentPage,
	})
}
