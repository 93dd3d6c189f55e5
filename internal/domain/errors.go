package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateIdentity   = errors.New("username or email already in use")
	ErrSelfApproval        = errors.New("admins cannot approve their own account")
	ErrInsufficientRank    = errors.New("acting admin does not outrank the target")
	ErrOutsideJurisdiction = errors.New("target is outside the acting admin's jurisdiction")
	ErrUnknownRole         = errors.New("role is not part of the admin hierarchy")
	ErrInvalidStatus       = errors.New("invalid account status")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthenticated     = errors.New("no valid session")
	ErrAlreadyVoted        = errors.New("resident has already voted on this proposal")
	ErrProposalClosed      = errors.New("proposal is closed for voting")
)

// AccountNotActiveError is returned on login attempts against accounts that
// exist but are not in active status. It carries the current status so the
// client can tell "pending approval" from "suspended".
type AccountNotActiveError struct {
	Status AccountStatus
}

func (e *AccountNotActiveError) Error() string {
	return fmt.Sprintf("account is not active: %s", e.Status)
}
