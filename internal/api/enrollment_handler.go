package api

import (
	"net/http"

	"masjidhub-backend/internal/domain"
)

func (s *Server) handleApplyEnrollment(w http.ResponseWriter, r *http.Request) {
	var enrollment domain.Enrollment
	if err := decodeJSON(r, &enrollment); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if err := s.enrollmentSvc.Apply(r.Context(), &enrollment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, enrollment)
}

func (s *Server) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := s.enrollmentSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, enrollments)
}

func (s *Server) handleSetEnrollmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid enrollment id"})
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	enrollment, err := s.enrollmentSvc.SetStatus(r.Context(), id, domain.EnrollmentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, enrollment)
}
