package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/utils"
	"github.com/MKhiriev/go-staffing/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, nonNil(projects), http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := decodeJSON(w, r, &project); err != nil {
		writeError(w, r, err)
		return
	}
	project.ID = uuid.Nil

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, created, http.StatusCreated)
}
