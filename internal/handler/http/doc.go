// Package http implements the REST transport of the staffing service.
//
// It wires the chi router, the request middlewares (trace id, access log,
// metrics, compression, admin guard) and the resource handlers for users,
// projects and assignments. Handlers translate service and store errors into
// the {"data"} / {"errors"} response envelope.
package http
