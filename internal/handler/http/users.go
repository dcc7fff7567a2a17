package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/utils"
	"github.com/MKhiriev/go-staffing/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, nonNil(users), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, user, http.StatusOK)
}

// createUser answers 201 with the stored user and the password as submitted.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}
	user.ID = uuid.Nil

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, created, http.StatusCreated)
}
