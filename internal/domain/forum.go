package domain

import "time"

type Discussion struct {
	ID         int32     `json:"id"`
	SocietyID  int32     `json:"society_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedOn  time.Time `json:"created_on"`
}

type Reply struct {
	ID           int32     `json:"id"`
	DiscussionID int32     `json:"discussion_id"`
	AuthorName   string    `json:"author_name"`
	Body         string    `json:"body"`
	CreatedOn    time.Time `json:"created_on"`
}

type ProposalStatus string

const (
	ProposalOpen   ProposalStatus = "open"
	ProposalClosed ProposalStatus = "closed"
)

type Proposal struct {
	ID           int32          `json:"id"`
	SocietyID    int32          `json:"society_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Status       ProposalStatus `json:"status"`
	CreatedByID  int32          `json:"created_by_id"`
	CreatedOn    time.Time      `json:"created_on"`
	VotesFor     int32          `json:"votes_for"`
	VotesAgainst int32          `json:"votes_against"`
}

type VoteChoice string

const (
	VoteFor     VoteChoice = "for"
	VoteAgainst VoteChoice = "against"
)

type Vote struct {
	ID         int32      `json:"id"`
	ProposalID int32      `json:"proposal_id"`
	ResidentID int32      `json:"resident_id"`
	Choice     VoteChoice `json:"choice"`
	CreatedOn  time.Time  `json:"created_on"`
}
