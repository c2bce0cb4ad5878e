package ens

import (
	"github.com/x-xyz/ensagent/domain"
)

// Maturity is where a commitment stands in its [minAge, maxAge] window, all values in seconds
type Maturity struct {
	CommitTimestamp  int64 `json:"commitTimestamp"`
	Now              int64 `json:"now"`
	Age              int64 `json:"ageSeconds"`
	MinAge           int64 `json:"minCommitmentAge"`
	MaxAge           int64 `json:"maxCommitmentAge"`
	RemainingSeconds int64 `json:"remainingSeconds"`
}

// Committed reports whether the chain knows the commitment at all
func (m Maturity) Committed() bool {
	return m.CommitTimestamp != 0
}

// Evaluate returns nil once the commitment can be revealed.
// now is the latest block timestamp, never the local clock.
func (m *Maturity) Evaluate() error {
	if m.CommitTimestamp == 0 {
		m.Age = 0
		m.RemainingSeconds = 0
		return domain.NewError(domain.KindCommitmentNotFound, "commitment not found on-chain, the commit transaction may be unconfirmed, dropped or sent to another chain")
	}
	m.Age = m.Now - m.CommitTimestamp
	if m.Age < m.MinAge {
		m.RemainingSeconds = m.MinAge - m.Age
		return &domain.Error{
			Kind:             domain.KindCommitmentTooNew,
			Message:          "commitment is too new, wait before registering",
			RemainingSeconds: m.RemainingSeconds,
		}
	}
	m.RemainingSeconds = 0
	if m.MaxAge > 0 && m.Age > m.MaxAge {
		return domain.NewError(domain.KindCommitmentExpired, "commitment is %ds old, older than maxCommitmentAge %ds, commit again", m.Age, m.MaxAge)
	}
	return nil
}
