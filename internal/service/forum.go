package service

import (
	"context"
	"fmt"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"
)

type forumService struct {
	discussionRepo repository.DiscussionRepository
	proposalRepo   repository.ProposalRepository
	residentRepo   repository.ResidentRepository
}

func NewForumService(discussionRepo repository.DiscussionRepository, proposalRepo repository.ProposalRepository, residentRepo repository.ResidentRepository) ForumService {
	return &forumService{
		discussionRepo: discussionRepo,
		proposalRepo:   proposalRepo,
		residentRepo:   residentRepo,
	}
}

func (s *forumService) CreateDiscussion(ctx context.Context, discussion *domain.Discussion) error {
	if discussion.Title == "" {
		return fmt.Errorf("%w: discussion title is required", domain.ErrInvalidStatus)
	}
	return s.discussionRepo.Create(ctx, discussion)
}

func (s *forumService) ListDiscussions(ctx context.Context, societyID int32) ([]domain.Discussion, error) {
	return s.discussionRepo.ListBySociety(ctx, societyID)
}

func (s *forumService) AddReply(ctx context.Context, reply *domain.Reply) error {
	if _, err := s.discussionRepo.GetByID(ctx, reply.DiscussionID); err != nil {
		return err
	}
	return s.discussionRepo.CreateReply(ctx, reply)
}

func (s *forumService) ListReplies(ctx context.Context, discussionID int32) ([]domain.Reply, error) {
	return s.discussionRepo.ListReplies(ctx, discussionID)
}

func (s *forumService) CreateProposal(ctx context.Context, proposal *domain.Proposal) error {
	if proposal.Title == "" {
		return fmt.Errorf("%w: proposal title is required", domain.ErrInvalidStatus)
	}
	proposal.Status = domain.ProposalOpen
	return s.proposalRepo.Create(ctx, proposal)
}

func (s *forumService) ListProposals(ctx context.Context, societyID int32) ([]domain.Proposal, error) {
	return s.proposalRepo.ListBySociety(ctx, societyID)
}

func (s *forumService) CastVote(ctx context.Context, proposalID, residentID int32, choice domain.VoteChoice) (*domain.Proposal, error) {
	if choice != domain.VoteFor && choice != domain.VoteAgainst {
		return nil, fmt.Errorf("%w: unknown vote choice %q", domain.ErrInvalidStatus, choice)
	}

	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status != domain.ProposalOpen {
		return nil, domain.ErrProposalClosed
	}

	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if resident.Status != domain.ResidentApproved || resident.SocietyID != proposal.SocietyID {
		// Only approved residents of the proposal's society get a ballot.
		return nil, domain.ErrOutsideJurisdiction
	}

	vote := &domain.Vote{ProposalID: proposalID, ResidentID: residentID, Choice: choice}
	if err := s.proposalRepo.CreateVote(ctx, vote); err != nil {
		return nil, err
	}

	// Re-read for fresh tallies.
	return s.proposalRepo.GetByID(ctx, proposalID)
}

func (s *forumService) CloseProposal(ctx context.Context, actingAdminID, proposalID int32) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status == domain.ProposalClosed {
		return proposal, nil
	}

	proposal.Status = domain.ProposalClosed
	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}

	logger.Info("proposal closed",
		"acting_admin_id", actingAdminID, "proposal_id", proposal.ID,
		"votes_for", proposal.VotesFor, "votes_against", proposal.VotesAgainst)
	return proposal, nil
}
