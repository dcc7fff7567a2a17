package http

import (
	"net/http"

	"github.com/MKhiriev/go-staffing/internal/utils"
	"github.com/MKhiriev/go-staffing/models"
)

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.services.AssignmentService.ListAssignments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, nonNil(assignments), http.StatusOK)
}

// upsertAssignment answers 200 both when the pair is new and when its dates
// were overwritten.
func (h *Handler) upsertAssignment(w http.ResponseWriter, r *http.Request) {
	var upsert models.AssignmentUpsert
	if err := decodeJSON(w, r, &upsert); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.AssignmentService.UpsertAssignment(r.Context(), upsert)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, assignment, http.StatusOK)
}
