package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
)

// errorResponse is the one error envelope every endpoint returns. Status is
// only set for not-active login failures so clients can tell pending from
// suspended.
type errorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP status codes. Anything unmapped is a
// 500 with a generic body; the real error goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	var notActive *domain.AccountNotActiveError
	if errors.As(err, &notActive) {
		writeJSON(w, http.StatusForbidden, errorResponse{
			Message: notActive.Error(),
			Status:  string(notActive.Status),
		})
		return
	}

	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateIdentity), errors.Is(err, domain.ErrAlreadyVoted):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrSelfApproval),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrProposalClosed):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientRank),
		errors.Is(err, domain.ErrOutsideJurisdiction),
		errors.Is(err, domain.ErrUnknownRole):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		return
	}

	writeJSON(w, status, errorResponse{Message: err.Error()})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
