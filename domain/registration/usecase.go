package registration

import (
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain/ens"
)

type CommitParams struct {
	Label    string `json:"label" validate:"required"`
	Owner    string `json:"owner" validate:"required,address"`
	Duration string `json:"duration" validate:"omitempty,duration"`
	// SetPrimary defaults to true when nil
	SetPrimary *bool  `json:"setPrimary"`
	Network    string `json:"network"`
	// Texts are extra text records set atomically with the address record
	Texts map[string]string `json:"texts"`
}

type CommitResult struct {
	SessionId   SessionId       `json:"sessionId"`
	Tx          *ens.UnsignedTx `json:"tx"`
	WaitSeconds int64           `json:"waitSeconds"`
	Commitment  string          `json:"commitment"`
	Name        string          `json:"name"`
	Network     string          `json:"network"`
}

type RegisterResult struct {
	Tx                   *ens.UnsignedTx `json:"tx"`
	Price                ens.Price       `json:"price"`
	CommitmentAgeSeconds int64           `json:"commitmentAgeSeconds"`
	Name                 string          `json:"name"`
	Network              string          `json:"network"`
}

type StatusResult struct {
	SessionId        SessionId `json:"sessionId"`
	Name             string    `json:"name"`
	Network          string    `json:"network"`
	Commitment       string    `json:"commitment"`
	Committed        bool      `json:"committed"`
	CommitTimestamp  int64     `json:"commitTimestamp"`
	AgeSeconds       int64     `json:"ageSeconds"`
	MinCommitmentAge int64     `json:"minCommitmentAge"`
	MaxCommitmentAge int64     `json:"maxCommitmentAge"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	Ready            bool      `json:"ready"`
	// Expired is set when the commitment is older than maxCommitmentAge
	Expired bool `json:"expired"`
}

// UseCase drives commit, wait and register of one name
type UseCase interface {
	Commit(c ctx.Ctx, p CommitParams) (*CommitResult, error)
	Status(c ctx.Ctx, id SessionId) (*StatusResult, error)
	Register(c ctx.Ctx, id SessionId) (*RegisterResult, error)
}
