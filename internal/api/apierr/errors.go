package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeBrawlerNotFound    = "BRAWLER_NOT_FOUND"
	CodeMissionNotFound    = "MISSION_NOT_FOUND"
	CodeAlreadyCrewMember  = "ALREADY_CREW_MEMBER"
	CodeNotCrewMember      = "NOT_CREW_MEMBER"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrUsernameTaken):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}

	// Model errors. Mission not-found deliberately covers the
	// forbidden case too, so ownership probes learn nothing.
	case errors.Is(err, model.ErrMissionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMissionNotFound, "Mission not found"}}
	case errors.Is(err, model.ErrBrawlerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBrawlerNotFound, "Brawler not found"}}
	case errors.Is(err, model.ErrAlreadyCrewMember):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyCrewMember, "Already part of this mission"}}
	case errors.Is(err, model.ErrNotCrewMember):
		return &httpError{http.StatusConflict, APIError{CodeNotCrewMember, "Not part of this mission"}}
	case errors.Is(err, model.ErrInvalidMissionStatus):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid mission status"}}

	default:
		// Storage failures surface as a generic internal error
		// without leaking collaborator internals
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
