package http

import (
	"net/http"

	"github.com/MKhiriev/go-staffing/internal/utils"
)

type healthStatus struct {
	Status string `json:"status"`
}

// healthz answers 503 while the store is unreachable.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		utils.WriteErrors(w, http.StatusServiceUnavailable, "store is unreachable")
		return
	}

	utils.WriteData(w, healthStatus{Status: "ok"}, http.StatusOK)
}
