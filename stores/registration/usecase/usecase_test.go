package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	mockEns "github.com/x-xyz/ensagent/domain/ens/mocks"
	"github.com/x-xyz/ensagent/domain/registration"
	mockRegistration "github.com/x-xyz/ensagent/domain/registration/mocks"
	"github.com/x-xyz/ensagent/service/cache/provider/primitive"
	"github.com/x-xyz/ensagent/stores/registration/repository"
)

var (
	mockCtx   = ctx.Background()
	mockOwner = "0x1111111111111111111111111111111111111111"
	mockId    = registration.SessionId("session-1")
	mockNow   = time.Unix(1700000000, 0)
)

type testsuite struct {
	suite.Suite

	cfg        ens.NetworkConfig
	sessions   *mockRegistration.SessionRepo
	controller *mockEns.RegistrarController
	chain      *mockEns.ChainReader
	im         *impl
}

func (ts *testsuite) SetupTest() {
	ts.cfg = ens.BuiltinNetworks[ens.NetworkSepolia]
	ts.sessions = mockRegistration.NewSessionRepo(ts.T())
	ts.controller = mockEns.NewRegistrarController(ts.T())
	ts.chain = mockEns.NewChainReader(ts.T())
	ts.im = New(ens.DefaultNetworks(), ts.sessions, ts.controller, ts.chain, DefaultConfig()).(*impl)
	ts.im.newSecret = func() ([32]byte, error) {
		return [32]byte{0x42}, nil
	}
	ts.im.newId = func() registration.SessionId { return mockId }
	ts.im.timeNow = func() time.Time { return mockNow }
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) commit() (*registration.CommitResult, *registration.Session) {
	var stored *registration.Session
	ts.controller.On("MinCommitmentAge", mockCtx, ts.cfg).Return(big.NewInt(60), nil).Once()
	ts.sessions.On("Put", mockCtx, mockId, mock.Anything, registration.DefaultSessionTtl).
		Run(func(args mock.Arguments) { stored = args.Get(2).(*registration.Session) }).
		Return(nil).Once()

	res, err := ts.im.Commit(mockCtx, registration.CommitParams{
		Label: "Alice.eth",
		Owner: mockOwner,
	})
	ts.Require().NoError(err)
	return res, stored
}

func (ts *testsuite) TestCommit() {
	res, stored := ts.commit()

	ts.Equal(mockId, res.SessionId)
	ts.Equal(int64(65), res.WaitSeconds)
	ts.Equal("alice.eth", res.Name)
	ts.Equal(ens.NetworkSepolia, res.Network)
	ts.Equal(common.HexToAddress(string(ts.cfg.RegistrarController)), res.Tx.To)
	ts.Equal("0", res.Tx.Value)
	ts.Equal(baseabi.ETHRegistrarControllerV4ABI.Methods["commit"].ID, []byte(res.Tx.Data[:4]))

	ts.Require().NotNil(stored)
	ts.Equal("alice", stored.Label)
	ts.True(stored.SetPrimary)
	ts.Equal(int64(ens.SecondsPerYear), stored.Duration.ToInt().Int64())
	ts.Equal(common.HexToAddress(string(ts.cfg.Resolver)), stored.Resolver)
	ts.Len(stored.ResolverData, 1)
	ts.Equal(mockNow.UnixMilli(), stored.CreatedAt)

	expected, err := ens.MakeCommitment(ts.cfg.Layout, stored.Registration())
	ts.Require().NoError(err)
	ts.Equal(expected.Hex(), res.Commitment)
	ts.Equal(expected, stored.Commitment)
}

func (ts *testsuite) TestCommitWithTexts() {
	ts.controller.On("MinCommitmentAge", mockCtx, ts.cfg).Return(big.NewInt(60), nil).Once()
	var stored *registration.Session
	ts.sessions.On("Put", mockCtx, mockId, mock.Anything, registration.DefaultSessionTtl).
		Run(func(args mock.Arguments) { stored = args.Get(2).(*registration.Session) }).
		Return(nil).Once()

	setPrimary := false
	_, err := ts.im.Commit(mockCtx, registration.CommitParams{
		Label:      "alice",
		Owner:      mockOwner,
		Duration:   "30d",
		SetPrimary: &setPrimary,
		Texts:      map[string]string{"url": "https://alice.example", "avatar": "ipfs://QmAvatarHash"},
	})
	ts.Require().NoError(err)
	ts.False(stored.SetPrimary)
	ts.Equal(int64(30*ens.SecondsPerDay), stored.Duration.ToInt().Int64())
	ts.Require().Len(stored.ResolverData, 3)

	setText := baseabi.PublicResolverABI.Methods["setText"]
	args, err := setText.Inputs.Unpack(stored.ResolverData[1][4:])
	ts.Require().NoError(err)
	ts.Equal("avatar", args[1])
}

func (ts *testsuite) TestCommitValidation() {
	tests := []struct {
		params registration.CommitParams
		kind   domain.ErrorKind
	}{
		{registration.CommitParams{Owner: mockOwner}, domain.KindMissingParam},
		{registration.CommitParams{Label: "alice"}, domain.KindMissingParam},
		{registration.CommitParams{Label: "alice", Owner: "0x1234"}, domain.KindInvalidParam},
		{registration.CommitParams{Label: "alice", Owner: mockOwner, Network: "goerli"}, domain.KindUnsupportedNetwork},
		{registration.CommitParams{Label: "alice", Owner: mockOwner, Duration: "forever"}, domain.KindInvalidParam},
		{registration.CommitParams{Label: "a.b", Owner: mockOwner}, domain.KindInvalidParam},
	}
	for _, tt := range tests {
		_, err := ts.im.Commit(mockCtx, tt.params)
		ts.Equal(tt.kind, domain.KindOf(err), "params %+v", tt.params)
	}
	ts.sessions.AssertNotCalled(ts.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (ts *testsuite) TestCommitFailureLeavesNoSession() {
	ts.controller.On("MinCommitmentAge", mockCtx, ts.cfg).Return(nil, errors.New("rpc down")).Once()

	_, err := ts.im.Commit(mockCtx, registration.CommitParams{Label: "alice", Owner: mockOwner})
	ts.Equal(domain.KindInternal, domain.KindOf(err))
	ts.sessions.AssertNotCalled(ts.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (ts *testsuite) TestCommitVerifyOnChain() {
	ts.im.cfg.VerifyCommitmentOnChain = true
	ts.controller.On("MakeCommitment", mockCtx, ts.cfg, mock.Anything).Return(common.HexToHash("0x01"), nil).Once()

	_, err := ts.im.Commit(mockCtx, registration.CommitParams{Label: "alice", Owner: mockOwner})
	ts.ErrorIs(err, domain.ErrCommitmentMismatch)
}

func (ts *testsuite) expectMaturity(stored *registration.Session, committedAt, now int64) {
	ts.controller.On("Commitments", mockCtx, ts.cfg, stored.Commitment).Return(big.NewInt(committedAt), nil).Once()
	ts.chain.On("LatestTimestamp", mockCtx, ts.cfg.ChainId).Return(uint64(now), nil).Once()
	ts.controller.On("MinCommitmentAge", mockCtx, ts.cfg).Return(big.NewInt(60), nil).Once()
	ts.controller.On("MaxCommitmentAge", mockCtx, ts.cfg).Return(big.NewInt(86400), nil).Once()
}

func (ts *testsuite) TestStatus() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Once()
	ts.expectMaturity(stored, 1700000000, 1700000040)

	res, err := ts.im.Status(mockCtx, mockId)
	ts.Require().NoError(err)
	ts.True(res.Committed)
	ts.False(res.Ready)
	ts.Equal(int64(40), res.AgeSeconds)
	ts.Equal(int64(20), res.RemainingSeconds)
	ts.Equal("alice.eth", res.Name)
}

func (ts *testsuite) TestStatusChainReadFails() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Once()
	ts.controller.On("Commitments", mockCtx, ts.cfg, stored.Commitment).Return(big.NewInt(1700000000), nil).Once()
	ts.chain.On("LatestTimestamp", mockCtx, ts.cfg.ChainId).Return(uint64(0), errors.New("rpc down")).Once()
	ts.controller.On("MinCommitmentAge", mockCtx, ts.cfg).Return(big.NewInt(60), nil).Once()
	ts.controller.On("MaxCommitmentAge", mockCtx, ts.cfg).Return(big.NewInt(86400), nil).Once()

	res, err := ts.im.Status(mockCtx, mockId)
	ts.Nil(res)
	ts.Equal(domain.KindInternal, domain.KindOf(err))
	ts.Contains(err.Error(), "latest block")
}

func (ts *testsuite) TestStatusMissing() {
	ts.sessions.On("Get", mockCtx, mockId).Return(nil, registration.ErrSessionNotFound).Once()
	_, err := ts.im.Status(mockCtx, mockId)
	ts.ErrorIs(err, domain.ErrSessionExpired)
}

func (ts *testsuite) TestRegister() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Twice()
	ts.sessions.On("Acquire", mockCtx, mockId, registration.DefaultLockTtl).Return(true, nil).Once()
	ts.expectMaturity(stored, 1700000000, 1700000100)
	ts.controller.On("RentPrice", mockCtx, ts.cfg, "alice", big.NewInt(ens.SecondsPerYear)).
		Return(big.NewInt(1000), big.NewInt(0), nil).Once()
	ts.chain.On("Simulate", mockCtx, ts.cfg.ChainId, stored.Owner, mock.Anything).Return(nil).Once()
	ts.sessions.On("Delete", mockCtx, mockId).Return(nil).Once()
	ts.sessions.On("Release", mockCtx, mockId).Return(nil).Once()

	res, err := ts.im.Register(mockCtx, mockId)
	ts.Require().NoError(err)
	ts.Equal("1100", res.Tx.Value)
	ts.Equal("1000", res.Price.Total.Wei)
	ts.Equal("1100", res.Price.TotalWithBuffer.Wei)
	ts.Equal(int64(100), res.CommitmentAgeSeconds)
	ts.Equal(baseabi.ETHRegistrarControllerV4ABI.Methods["register"].ID, []byte(res.Tx.Data[:4]))
}

func (ts *testsuite) TestRegisterTooNew() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Twice()
	ts.sessions.On("Acquire", mockCtx, mockId, registration.DefaultLockTtl).Return(true, nil).Once()
	ts.expectMaturity(stored, 1700000000, 1700000010)
	ts.sessions.On("Release", mockCtx, mockId).Return(nil).Once()

	_, err := ts.im.Register(mockCtx, mockId)
	var derr *domain.Error
	ts.Require().True(errors.As(err, &derr))
	ts.Equal(domain.KindCommitmentTooNew, derr.Kind)
	ts.Equal(int64(50), derr.RemainingSeconds)
	ts.sessions.AssertNotCalled(ts.T(), "Delete", mock.Anything, mock.Anything)
}

func (ts *testsuite) TestRegisterNotCommitted() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Twice()
	ts.sessions.On("Acquire", mockCtx, mockId, registration.DefaultLockTtl).Return(true, nil).Once()
	ts.expectMaturity(stored, 0, 1700000100)
	ts.sessions.On("Release", mockCtx, mockId).Return(nil).Once()

	_, err := ts.im.Register(mockCtx, mockId)
	ts.ErrorIs(err, domain.ErrCommitmentNotFound)
}

func (ts *testsuite) TestRegisterBusy() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Once()
	ts.sessions.On("Acquire", mockCtx, mockId, registration.DefaultLockTtl).Return(false, nil).Once()

	_, err := ts.im.Register(mockCtx, mockId)
	ts.ErrorIs(err, domain.ErrSessionBusy)
}

// lockAfterDelete runs a competing register to completion between the load and the lock
type lockAfterDelete struct {
	registration.SessionRepo
}

func (r lockAfterDelete) Acquire(c ctx.Ctx, id registration.SessionId, ttl time.Duration) (bool, error) {
	if err := r.SessionRepo.Delete(c, id); err != nil {
		return false, err
	}
	return r.SessionRepo.Acquire(c, id, ttl)
}

func (ts *testsuite) TestRegisterSessionConsumedWhileWaitingForLock() {
	_, stored := ts.commit()
	repo := repository.NewCacheRepo(primitive.NewPrimitive("regSession", 1))
	ts.Require().NoError(repo.Put(mockCtx, mockId, stored, time.Minute))
	ts.im.sessions = lockAfterDelete{SessionRepo: repo}

	_, err := ts.im.Register(mockCtx, mockId)
	ts.ErrorIs(err, domain.ErrSessionExpired)
	ts.chain.AssertNotCalled(ts.T(), "Simulate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// the lock is released for the next caller
	held, err := repo.Acquire(mockCtx, mockId, time.Minute)
	ts.Require().NoError(err)
	ts.True(held)
}

func (ts *testsuite) TestRegisterCorrupted() {
	_, stored := ts.commit()
	tampered := *stored
	tampered.Owner = common.HexToAddress("0x9999999999999999999999999999999999999999")
	ts.sessions.On("Get", mockCtx, mockId).Return(&tampered, nil).Once()

	_, err := ts.im.Register(mockCtx, mockId)
	ts.ErrorIs(err, domain.ErrSessionCorrupted)
}

func (ts *testsuite) TestRegisterSimulationFailedKeepsSession() {
	_, stored := ts.commit()
	ts.sessions.On("Get", mockCtx, mockId).Return(stored, nil).Twice()
	ts.sessions.On("Acquire", mockCtx, mockId, registration.DefaultLockTtl).Return(true, nil).Once()
	ts.expectMaturity(stored, 1700000000, 1700000100)
	ts.controller.On("RentPrice", mockCtx, ts.cfg, "alice", mock.Anything).Return(big.NewInt(1000), big.NewInt(0), nil).Once()
	ts.chain.On("Simulate", mockCtx, ts.cfg.ChainId, stored.Owner, mock.Anything).
		Return(&ens.SimulationError{Reason: "InsufficientValue()", RevertData: []byte{0x01}}).Once()
	ts.sessions.On("Release", mockCtx, mockId).Return(nil).Once()

	_, err := ts.im.Register(mockCtx, mockId)
	var derr *domain.Error
	ts.Require().True(errors.As(err, &derr))
	ts.Equal(domain.KindSimulationFailed, derr.Kind)
	ts.Equal("InsufficientValue()", derr.Debug["revertReason"])
	ts.Equal(stored.Commitment.Hex(), derr.Debug["commitment"])
	ts.Equal("1100", derr.Debug["valueWei"])
	ts.sessions.AssertNotCalled(ts.T(), "Delete", mock.Anything, mock.Anything)
}

// Two registers racing on one session against a real lock, only one reaches the chain
func (ts *testsuite) TestRegisterSingleFlight() {
	_, stored := ts.commit()
	repo := repository.NewCacheRepo(primitive.NewPrimitive("regSession", 1))
	ts.Require().NoError(repo.Put(mockCtx, mockId, stored, time.Minute))
	ts.im.sessions = repo

	held, err := repo.Acquire(mockCtx, mockId, time.Minute)
	ts.Require().NoError(err)
	ts.Require().True(held)

	_, err = ts.im.Register(mockCtx, mockId)
	ts.ErrorIs(err, domain.ErrSessionBusy)
	ts.chain.AssertNotCalled(ts.T(), "Simulate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
