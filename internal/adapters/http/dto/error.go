package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/platform/logging"
)

// ContentTypeProblem is the media type of RFC 9457 responses.
const ContentTypeProblem = "application/problem+json"

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// internalDetail replaces the message of unmapped errors so adapter
// internals never reach the host.
const internalDetail = "internal error"

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrCommandParse, http.StatusUnprocessableEntity},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// NewErrorResponse maps a domain error onto an RFC 9457 problem for r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalDetail
	}
	resp := problem(r, status, detail)

	var verr *domain.ValidationError
	var perr *domain.CommandParseError
	switch {
	case errors.As(err, &verr):
		resp.Errors = validationFieldsToDetails(verr.Fields)
	case errors.As(err, &perr):
		resp.Detail = perr.UserMessage()
		resp.Errors = []ErrorDetail{{Location: "body.content", Message: perr.Reason, Value: perr.Text}}
	}

	return resp
}

// WriteErrorResponse writes the problem for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem with an explicit status, for failures that
// do not come from the domain (timeouts, panics, unknown routes).
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, problem(r, status, detail))
}

func problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

func domainErrorToStatus(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// validationFieldsToDetails turns field messages into body.* details
// ordered by location.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
