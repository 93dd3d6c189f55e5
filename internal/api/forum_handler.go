package api

import (
	"net/http"

	"masjidhub-backend/internal/domain"
)

func (s *Server) handleCreateDiscussion(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	var discussion domain.Discussion
	if err := decodeJSON(r, &discussion); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	discussion.SocietyID = societyID

	if err := s.forumSvc.CreateDiscussion(r.Context(), &discussion); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, discussion)
}

func (s *Server) handleListDiscussions(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	discussions, err := s.forumSvc.ListDiscussions(r.Context(), societyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, discussions)
}

func (s *Server) handleAddReply(w http.ResponseWriter, r *http.Request) {
	discussionID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid discussion id"})
		return
	}

	var reply domain.Reply
	if err := decodeJSON(r, &reply); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	reply.DiscussionID = discussionID

	if err := s.forumSvc.AddReply(r.Context(), &reply); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reply)
}

func (s *Server) handleListReplies(w http.ResponseWriter, r *http.Request) {
	discussionID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid discussion id"})
		return
	}

	replies, err := s.forumSvc.ListReplies(r.Context(), discussionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, replies)
}

func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	var proposal domain.Proposal
	if err := decodeJSON(r, &proposal); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	proposal.SocietyID = societyID
	proposal.CreatedByID = ActingAdmin(r.Context()).ID

	if err := s.forumSvc.CreateProposal(r.Context(), &proposal); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, proposal)
}

func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	societyID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid society id"})
		return
	}

	proposals, err := s.forumSvc.ListProposals(r.Context(), societyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proposals)
}

type castVoteRequest struct {
	ResidentID int32  `json:"resident_id"`
	Choice     string `json:"choice"`
}

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	proposalID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid proposal id"})
		return
	}

	var req castVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	proposal, err := s.forumSvc.CastVote(r.Context(), proposalID, req.ResidentID, domain.VoteChoice(req.Choice))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

func (s *Server) handleCloseProposal(w http.ResponseWriter, r *http.Request) {
	proposalID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid proposal id"})
		return
	}

	acting := ActingAdmin(r.Context())
	proposal, err := s.forumSvc.CloseProposal(r.Context(), acting.ID, proposalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}
