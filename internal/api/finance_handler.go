package api

import (
	"net/http"

	"masjidhub-backend/internal/domain"
)

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	month := r.URL.Query().Get("month")
	contributions, err := s.financeSvc.ListContributions(r.Context(), societyID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contributions)
}

func (s *Server) handleMarkContributionPaid(w http.ResponseWriter, r *http.Request) {
	contributionID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid contribution id"})
		return
	}

	acting := ActingAdmin(r.Context())
	contribution, err := s.financeSvc.MarkContributionPaid(r.Context(), acting.ID, contributionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contribution)
}

func (s *Server) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	var expense domain.Expense
	if err := decodeJSON(r, &expense); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	expense.SocietyID = societyID
	expense.RecordedByID = ActingAdmin(r.Context()).ID

	if err := s.financeSvc.RecordExpense(r.Context(), &expense); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	month := r.URL.Query().Get("month")
	expenses, err := s.financeSvc.ListExpenses(r.Context(), societyID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleRecordDonation(w http.ResponseWriter, r *http.Request) {
	var donation domain.Donation
	if err := decodeJSON(r, &donation); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if donation.DonorName == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "donor name is required"})
		return
	}

	if err := s.financeSvc.RecordDonation(r.Context(), &donation); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, donation)
}

func (s *Server) handleListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := s.financeSvc.ListDonations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, donations)
}
