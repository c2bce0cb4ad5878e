package ens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensagent/domain"
)

func TestMaturityEvaluate(t *testing.T) {
	cases := []struct {
		name      string
		m         Maturity
		kind      domain.ErrorKind
		age       int64
		remaining int64
	}{
		{"not committed", Maturity{Now: 1000, MinAge: 60, MaxAge: 86400}, domain.KindCommitmentNotFound, 0, 0},
		{"too new", Maturity{CommitTimestamp: 1000, Now: 1040, MinAge: 60, MaxAge: 86400}, domain.KindCommitmentTooNew, 40, 20},
		{"exactly min age", Maturity{CommitTimestamp: 1000, Now: 1060, MinAge: 60, MaxAge: 86400}, "", 60, 0},
		{"ready", Maturity{CommitTimestamp: 1000, Now: 5000, MinAge: 60, MaxAge: 86400}, "", 4000, 0},
		{"exactly max age", Maturity{CommitTimestamp: 1000, Now: 87400, MinAge: 60, MaxAge: 86400}, "", 86400, 0},
		{"expired", Maturity{CommitTimestamp: 1000, Now: 87401, MinAge: 60, MaxAge: 86400}, domain.KindCommitmentExpired, 86401, 0},
		{"no max age", Maturity{CommitTimestamp: 1000, Now: 10000000, MinAge: 60}, "", 9999000, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := c.m
			err := m.Evaluate()
			if c.kind == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, c.kind, domain.KindOf(err))
			}
			assert.Equal(t, c.age, m.Age)
			assert.Equal(t, c.remaining, m.RemainingSeconds)
		})
	}
}

func TestMaturityTooNewCarriesRemaining(t *testing.T) {
	m := Maturity{CommitTimestamp: 100, Now: 110, MinAge: 60}
	err := m.Evaluate()

	var e *domain.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, int64(50), e.RemainingSeconds)
	assert.True(t, m.Committed())
	assert.False(t, Maturity{}.Committed())
}
