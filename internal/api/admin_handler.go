package api

import (
	"net/http"
	"strconv"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/service"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterAdminInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if input.Name == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "name, username, email and password are required"})
		return
	}
	if !input.Role.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "unknown role"})
		return
	}

	account, err := s.adminSvc.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterAdminInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if input.Name == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "name, username, email and password are required"})
		return
	}

	account, err := s.adminSvc.CreateByOperator(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

// handleListAdmins filters by tier via ?level=<role>; no filter lists all.
func (s *Server) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.URL.Query().Get("level"))
	admins, err := s.adminSvc.List(r.Context(), role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admins)
}

func (s *Server) handleApproveAdmin(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid admin id"})
		return
	}

	acting := ActingAdmin(r.Context())
	account, err := s.adminSvc.Approve(r.Context(), acting.ID, targetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleSetAdminStatus(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid admin id"})
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	acting := ActingAdmin(r.Context())
	account, err := s.adminSvc.SetStatus(r.Context(), acting.ID, targetID, domain.AccountStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}
