package api

import (
	"net/http"

	"masjidhub-backend/internal/domain"
)

func (s *Server) handleCreateSociety(w http.ResponseWriter, r *http.Request) {
	var society domain.Society
	if err := decodeJSON(r, &society); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if err := s.communitySvc.CreateSociety(r.Context(), &society); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, society)
}

func (s *Server) handleGetSociety(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	society, err := s.communitySvc.GetSociety(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, society)
}

func (s *Server) handleListSocieties(w http.ResponseWriter, r *http.Request) {
	societies, err := s.communitySvc.ListSocieties(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, societies)
}

func (s *Server) handleRegisterResident(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	var resident domain.Resident
	if err := decodeJSON(r, &resident); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if resident.Name == "" || resident.HouseNumber == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "name and house number are required"})
		return
	}
	resident.SocietyID = societyID

	if err := s.communitySvc.RegisterResident(r.Context(), &resident); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resident)
}

func (s *Server) handleListResidents(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	residents, err := s.communitySvc.ListResidents(r.Context(), societyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residents)
}

func (s *Server) handleSetResidentStatus(w http.ResponseWriter, r *http.Request) {
	residentID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid resident id"})
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	acting := ActingAdmin(r.Context())
	resident, err := s.communitySvc.SetResidentStatus(r.Context(), acting.ID, residentID, domain.ResidentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resident)
}
