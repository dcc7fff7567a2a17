package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/utils"
	"github.com/MKhiriev/go-staffing/models"
)

// diagnostics echoes the caller's transport address, the request headers and
// the authenticated principal. The payload is written without the data
// envelope.
func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	info := models.Diagnostics{
		Request: models.RequestInfo{
			Client:  clientInfo(r.RemoteAddr),
			Headers: flattenHeaders(r),
		},
	}

	if principal, ok := utils.GetPrincipalFromContext(r.Context()); ok {
		info.User = &principal
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("diagnostics response failed")
	}
}

func clientInfo(remoteAddr string) models.ClientInfo {
	host, rawPort, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return models.ClientInfo{Host: remoteAddr}
	}

	port, _ := strconv.Atoi(rawPort)
	return models.ClientInfo{Host: host, Port: port}
}

// flattenHeaders lower-cases header names and joins repeated values.
// The Authorization header is never echoed.
func flattenHeaders(r *http.Request) map[string]string {
	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		key := strings.ToLower(name)
		if key == "authorization" {
			continue
		}
		headers[key] = strings.Join(values, ", ")
	}

	if r.Host != "" {
		headers["host"] = r.Host
	}

	return headers
}
