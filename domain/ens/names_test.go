package ens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensagent/domain"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		input string
		want  string
		kind  domain.ErrorKind
	}{
		{"alice", "alice", ""},
		{" Alice ", "alice", ""},
		{"alice.eth", "alice", ""},
		{"ALICE.ETH", "alice", ""},
		{"", "", domain.KindMissingParam},
		{"   ", "", domain.KindMissingParam},
		{"sub.alice", "", domain.KindInvalidParam},
	}
	for _, c := range cases {
		got, err := NormalizeLabel(c.input)
		if c.kind != "" {
			assert.Equal(t, c.kind, domain.KindOf(err), c.input)
			continue
		}
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got)
	}
}

func TestNormalizeName(t *testing.T) {
	got, err := NormalizeName("Sub.Alice.ETH")
	require.NoError(t, err)
	assert.Equal(t, "sub.alice.eth", got)
	assert.True(t, IsSubname(got))

	got, err = NormalizeName("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice.eth", got)
	assert.False(t, IsSubname(got))

	_, err = NormalizeName("a..eth")
	assert.Equal(t, domain.KindInvalidParam, domain.KindOf(err))

	_, err = NormalizeName("")
	assert.Equal(t, domain.KindMissingParam, domain.KindOf(err))
}

func TestHashes(t *testing.T) {
	h, err := NameHash("eth")
	require.NoError(t, err)
	assert.Equal(t, "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae", h.Hex())

	h, err = NameHash("alice.eth")
	require.NoError(t, err)
	assert.Equal(t, "0x787192fc5378cc32aa956ddfdedbf26b24e8d78e40109add0eea2c1a012c3dec", h.Hex())

	h, err = LabelHash("eth")
	require.NoError(t, err)
	assert.Equal(t, "0x4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0", h.Hex())

	id, err := TokenId("eth")
	require.NoError(t, err)
	assert.Equal(t, h.Big(), id)
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("owner", "0x00000000000000000000000000000000000000a1")
	require.NoError(t, err)
	assert.Equal(t, testOwner, addr)

	_, err = ParseAddress("owner", "")
	assert.Equal(t, domain.KindMissingParam, domain.KindOf(err))

	_, err = ParseAddress("owner", "0x1")
	assert.Equal(t, domain.KindInvalidParam, domain.KindOf(err))

	_, err = ParseAddress("owner", "00000000000000000000000000000000000000a1")
	assert.Equal(t, domain.KindInvalidParam, domain.KindOf(err))
}
