package registration

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
)

const (
	DefaultSessionTtl = 24 * time.Hour
	DefaultLockTtl    = 30 * time.Second
	// DefaultWaitBuffer is added to minCommitmentAge in the wait hint
	DefaultWaitBuffer = 5 * time.Second
)

var ErrSessionNotFound = domain.NewError(domain.KindSessionExpired, "session not found or expired, create a new commit")

type SessionId string

func (id SessionId) String() string {
	return string(id)
}

// Session bridges commit and register, it is written once and never updated
type Session struct {
	Secret       common.Hash     `json:"secret"`
	Label        string          `json:"label"`
	Owner        common.Address  `json:"owner"`
	Duration     *hexutil.Big    `json:"duration"`
	Resolver     common.Address  `json:"resolver"`
	ResolverData []hexutil.Bytes `json:"resolverData"`
	SetPrimary   bool            `json:"setPrimary"`
	Commitment   common.Hash     `json:"commitment"`
	Network      string          `json:"network"`
	CreatedAt    int64           `json:"createdAt"`
}

// Registration rebuilds the controller inputs the session was committed with
func (s *Session) Registration() ens.Registration {
	data := make([][]byte, 0, len(s.ResolverData))
	for _, d := range s.ResolverData {
		data = append(data, []byte(d))
	}
	var duration *big.Int
	if s.Duration != nil {
		duration = s.Duration.ToInt()
	}
	return ens.Registration{
		Label:         s.Label,
		Owner:         s.Owner,
		Duration:      duration,
		Secret:        s.Secret,
		Resolver:      s.Resolver,
		Data:          data,
		ReverseRecord: s.SetPrimary,
	}
}

func (s *Session) Name() string {
	return ens.FullName(s.Label)
}

func (s *Session) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalSession(b []byte) (*Session, error) {
	s := &Session{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SessionRepo stores sessions with a per key TTL and a single flight lock per session
type SessionRepo interface {
	Put(c ctx.Ctx, id SessionId, s *Session, ttl time.Duration) error
	// Get returns ErrSessionNotFound on miss or expiry
	Get(c ctx.Ctx, id SessionId) (*Session, error)
	Delete(c ctx.Ctx, id SessionId) error
	// Acquire returns false when another caller holds the lock
	Acquire(c ctx.Ctx, id SessionId, ttl time.Duration) (bool, error)
	Release(c ctx.Ctx, id SessionId) error
}
