package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// envelope is models.Response with a deferred data payload.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []string        `json:"errors"`
}

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// decodeResponse unwraps the envelope of resp into out.
// out may be nil when only the outcome matters.
func decodeResponse(resp *resty.Response, out any) error {
	var env envelope
	if body := resp.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil && resp.IsSuccess() {
			return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
	}

	if !resp.IsSuccess() {
		kind, ok := statusKinds[resp.StatusCode()]
		if !ok {
			kind = ErrUnexpectedResponse
		}
		return &APIError{StatusCode: resp.StatusCode(), Messages: env.Errors, kind: kind}
	}

	if len(env.Errors) > 0 {
		return &APIError{StatusCode: resp.StatusCode(), Messages: env.Errors, kind: kindFromMessages(env.Errors)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// kindFromMessages classifies the errors body of a 200 response.
func kindFromMessages(messages []string) error {
	for _, message := range messages {
		switch {
		case strings.HasSuffix(message, "already exists"):
			return ErrAlreadyExists
		case message == invalidReferenceMessage:
			return ErrInvalidReference
		}
	}
	return ErrUnexpectedResponse
}

const invalidReferenceMessage = "invalid project_id or user_id"
