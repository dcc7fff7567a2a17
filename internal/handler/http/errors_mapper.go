package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/service"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/internal/utils"
)

const internalErrorMessage = "internal server error"

// Conflicts are reported with 200 and an errors body.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidPathID:               http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,

	store.ErrUserNotFound:               http.StatusNotFound,
	store.ErrProjectNotFound:            http.StatusNotFound,
	store.ErrUserAlreadyExists:          http.StatusOK,
	store.ErrProjectAlreadyExists:       http.StatusOK,
	store.ErrInvalidAssignmentReference: http.StatusOK,
}

// domainErrors are reported to clients by their own message.
var domainErrors = []error{
	store.ErrUserNotFound,
	store.ErrProjectNotFound,
	store.ErrUserAlreadyExists,
	store.ErrProjectAlreadyExists,
	store.ErrInvalidAssignmentReference,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err.
// Internal failures never leak their details.
func messageFromError(err error) string {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	if statusFromError(err) == http.StatusBadRequest {
		return err.Error()
	}

	return internalErrorMessage
}

// writeError logs err and writes it as an errors envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteErrors(w, status, messageFromError(err))
}
