package usecase

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/domain/registration"
	"golang.org/x/xerrors"
)

type Config struct {
	SessionTtl         time.Duration
	LockTtl            time.Duration
	WaitBuffer         time.Duration
	PriceBufferPercent int64
	// VerifyCommitmentOnChain cross checks the local commitment with the controller view at commit
	VerifyCommitmentOnChain bool
}

func DefaultConfig() Config {
	return Config{
		SessionTtl:         registration.DefaultSessionTtl,
		LockTtl:            registration.DefaultLockTtl,
		WaitBuffer:         registration.DefaultWaitBuffer,
		PriceBufferPercent: ens.DefaultPriceBufferPercent,
	}
}

type impl struct {
	networks   ens.Networks
	sessions   registration.SessionRepo
	controller ens.RegistrarController
	chain      ens.ChainReader
	cfg        Config
	met        metrics.Service

	newSecret func() ([32]byte, error)
	newId     func() registration.SessionId
	timeNow   func() time.Time
}

func New(
	networks ens.Networks,
	sessions registration.SessionRepo,
	controller ens.RegistrarController,
	chain ens.ChainReader,
	cfg Config,
) registration.UseCase {
	return &impl{
		networks:   networks,
		sessions:   sessions,
		controller: controller,
		chain:      chain,
		cfg:        cfg,
		met:        metrics.New("registration"),
		newSecret:  randomSecret,
		newId: func() registration.SessionId {
			return registration.SessionId(uuid.NewString())
		},
		timeNow: time.Now,
	}
}

func randomSecret() ([32]byte, error) {
	var secret [32]byte
	if _, err := rand.Read(secret[:]); err != nil {
		return secret, xerrors.Errorf("failed to read random secret: %w", err)
	}
	return secret, nil
}

func (im *impl) bump(op string, err error) {
	kind := "ok"
	if err != nil {
		kind = string(domain.KindOf(err))
	}
	im.met.BumpSum(op, 1, "kind", kind)
}

// resolverData is setAddr(node, owner) followed by setText of texts in key order
func resolverData(name string, owner common.Address, texts map[string]string) ([][]byte, error) {
	node, err := ens.NameHash(name)
	if err != nil {
		return nil, err
	}
	setAddr, err := ens.SetAddrCalldata(node, owner)
	if err != nil {
		return nil, err
	}
	data := [][]byte{setAddr}

	textKeys := make([]string, 0, len(texts))
	for k := range texts {
		textKeys = append(textKeys, k)
	}
	sort.Strings(textKeys)
	for _, k := range textKeys {
		if k == "" {
			return nil, domain.NewError(domain.KindInvalidParam, "text record key must not be empty")
		}
		setText, err := ens.SetTextCalldata(node, k, texts[k])
		if err != nil {
			return nil, err
		}
		data = append(data, setText)
	}
	return data, nil
}

func (im *impl) Commit(c ctx.Ctx, p registration.CommitParams) (res *registration.CommitResult, err error) {
	defer func() { im.bump("registration.commit", err) }()

	if p.Label == "" {
		return nil, domain.NewError(domain.KindMissingParam, "label is required")
	}
	if p.Owner == "" {
		return nil, domain.NewError(domain.KindMissingParam, "owner is required")
	}
	label, err := ens.NormalizeLabel(p.Label)
	if err != nil {
		return nil, err
	}
	owner, err := ens.ParseAddress("owner", p.Owner)
	if err != nil {
		return nil, err
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}
	duration, err := ens.DurationParam(p.Duration)
	if err != nil {
		return nil, err
	}
	setPrimary := true
	if p.SetPrimary != nil {
		setPrimary = *p.SetPrimary
	}

	name := ens.FullName(label)
	data, err := resolverData(name, owner, p.Texts)
	if err != nil {
		return nil, err
	}

	secret, err := im.newSecret()
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to generate secret")
	}
	reg := ens.Registration{
		Label:         label,
		Owner:         owner,
		Duration:      duration,
		Secret:        secret,
		Resolver:      cfg.Resolver.Common(),
		Data:          data,
		ReverseRecord: setPrimary,
	}
	commitment, err := ens.MakeCommitment(cfg.Layout, reg)
	if err != nil {
		return nil, err
	}

	if im.cfg.VerifyCommitmentOnChain {
		remote, err := im.controller.MakeCommitment(c, cfg, reg)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to read makeCommitment")
		}
		if remote != commitment {
			c.WithFields(log.Fields{
				"local":   commitment.Hex(),
				"remote":  remote.Hex(),
				"network": cfg.Name,
			}).Error("commitment mismatch")
			return nil, domain.NewError(domain.KindCommitmentMismatch, "local commitment %s differs from controller %s", commitment.Hex(), remote.Hex())
		}
	}

	tx, err := ens.BuildCommitTx(cfg, commitment)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to build commit tx")
	}
	minAge, err := im.controller.MinCommitmentAge(c, cfg)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to read minCommitmentAge")
	}

	resolverDataHex := make([]hexutil.Bytes, 0, len(data))
	for _, d := range data {
		resolverDataHex = append(resolverDataHex, d)
	}
	session := &registration.Session{
		Secret:       secret,
		Label:        label,
		Owner:        owner,
		Duration:     (*hexutil.Big)(duration),
		Resolver:     reg.Resolver,
		ResolverData: resolverDataHex,
		SetPrimary:   setPrimary,
		Commitment:   commitment,
		Network:      cfg.Name,
		CreatedAt:    im.timeNow().UnixMilli(),
	}
	id := im.newId()
	if err := im.sessions.Put(c, id, session, im.cfg.SessionTtl); err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to store session")
	}

	c.WithFields(log.Fields{
		"sessionId":  id,
		"name":       name,
		"network":    cfg.Name,
		"commitment": commitment.Hex(),
	}).Info("commit prepared")

	return &registration.CommitResult{
		SessionId:   id,
		Tx:          tx,
		WaitSeconds: minAge.Int64() + int64(im.cfg.WaitBuffer/time.Second),
		Commitment:  commitment.Hex(),
		Name:        name,
		Network:     cfg.Name,
	}, nil
}

// load returns a session whose stored commitment still matches its fields
func (im *impl) load(c ctx.Ctx, id registration.SessionId) (*registration.Session, ens.NetworkConfig, error) {
	if id == "" {
		return nil, ens.NetworkConfig{}, domain.NewError(domain.KindMissingParam, "sessionId is required")
	}
	s, err := im.sessions.Get(c, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrSessionCorrupted) {
			return nil, ens.NetworkConfig{}, err
		}
		return nil, ens.NetworkConfig{}, domain.WrapError(domain.KindInternal, err, "failed to load session")
	}
	cfg, err := im.networks.Get(s.Network)
	if err != nil {
		return nil, ens.NetworkConfig{}, err
	}
	recomputed, err := ens.MakeCommitment(cfg.Layout, s.Registration())
	if err != nil || recomputed != s.Commitment {
		c.WithFields(log.Fields{
			"err":        err,
			"sessionId":  id,
			"stored":     s.Commitment.Hex(),
			"recomputed": recomputed.Hex(),
		}).Error("session commitment mismatch")
		return nil, ens.NetworkConfig{}, domain.NewError(domain.KindSessionCorrupted, "stored commitment does not match the session, create a new commit")
	}
	return s, cfg, nil
}

// maturity reads the commit time, block time and age bounds as one batch, the first failure wins
func (im *impl) maturity(c ctx.Ctx, cfg ens.NetworkConfig, commitment common.Hash) (*ens.Maturity, error) {
	var (
		committedAt, minAge, maxAge *big.Int
		now                         uint64
	)
	reads := []func() error{
		func() (err error) {
			if committedAt, err = im.controller.Commitments(c, cfg, commitment); err != nil {
				return domain.WrapError(domain.KindInternal, err, "failed to read commitments")
			}
			return nil
		},
		func() (err error) {
			if now, err = im.chain.LatestTimestamp(c, cfg.ChainId); err != nil {
				return domain.WrapError(domain.KindInternal, err, "failed to read latest block")
			}
			return nil
		},
		func() (err error) {
			if minAge, err = im.controller.MinCommitmentAge(c, cfg); err != nil {
				return domain.WrapError(domain.KindInternal, err, "failed to read minCommitmentAge")
			}
			return nil
		},
		func() (err error) {
			if maxAge, err = im.controller.MaxCommitmentAge(c, cfg); err != nil {
				return domain.WrapError(domain.KindInternal, err, "failed to read maxCommitmentAge")
			}
			return nil
		},
	}

	b := goroutines.NewBatch(len(reads), goroutines.WithBatchSize(len(reads)))
	defer b.Close()
	for _, read := range reads {
		read := read
		b.Queue(func() (interface{}, error) { return nil, read() })
	}
	b.QueueComplete()

	var first error
	for ret := range b.Results() {
		if ret.Error() != nil && first == nil {
			first = ret.Error()
		}
	}
	if first != nil {
		return nil, first
	}
	return &ens.Maturity{
		CommitTimestamp: committedAt.Int64(),
		Now:             int64(now),
		MinAge:          minAge.Int64(),
		MaxAge:          maxAge.Int64(),
	}, nil
}

func (im *impl) Status(c ctx.Ctx, id registration.SessionId) (*registration.StatusResult, error) {
	s, cfg, err := im.load(c, id)
	if err != nil {
		return nil, err
	}
	m, err := im.maturity(c, cfg, s.Commitment)
	if err != nil {
		return nil, err
	}
	evalErr := m.Evaluate()

	return &registration.StatusResult{
		SessionId:        id,
		Name:             s.Name(),
		Network:          cfg.Name,
		Commitment:       s.Commitment.Hex(),
		Committed:        m.Committed(),
		CommitTimestamp:  m.CommitTimestamp,
		AgeSeconds:       m.Age,
		MinCommitmentAge: m.MinAge,
		MaxCommitmentAge: m.MaxAge,
		RemainingSeconds: m.RemainingSeconds,
		Ready:            evalErr == nil,
		Expired:          errors.Is(evalErr, domain.ErrCommitmentExpired),
	}, nil
}

func (im *impl) Register(c ctx.Ctx, id registration.SessionId) (res *registration.RegisterResult, err error) {
	defer func() { im.bump("registration.register", err) }()

	s, cfg, err := im.load(c, id)
	if err != nil {
		return nil, err
	}

	locked, err := im.sessions.Acquire(c, id, im.cfg.LockTtl)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to lock session")
	}
	if !locked {
		return nil, domain.NewError(domain.KindSessionBusy, "another register request for this session is in progress")
	}
	defer func() {
		if err := im.sessions.Release(c, id); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"sessionId": id,
			}).Warn("failed to release session lock")
		}
	}()
	// a holder that finished before we got the lock has consumed the session
	if s, cfg, err = im.load(c, id); err != nil {
		return nil, err
	}

	m, err := im.maturity(c, cfg, s.Commitment)
	if err != nil {
		return nil, err
	}
	if err := m.Evaluate(); err != nil {
		return nil, err
	}

	reg := s.Registration()
	base, premium, err := im.controller.RentPrice(c, cfg, reg.Label, reg.Duration)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to read rentPrice")
	}
	price := ens.NewPrice(base, premium, im.cfg.PriceBufferPercent)

	tx, err := ens.BuildRegisterTx(cfg, reg, price.Value())
	if err != nil {
		return nil, err
	}

	if err := im.chain.Simulate(c, cfg.ChainId, s.Owner, tx); err != nil {
		var simErr *ens.SimulationError
		if !errors.As(err, &simErr) {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to simulate register")
		}
		c.WithFields(log.Fields{
			"sessionId": id,
			"reason":    simErr.Reason,
			"network":   cfg.Name,
		}).Warn("register simulation reverted")
		return nil, domain.WrapError(domain.KindSimulationFailed, simErr, "register simulation reverted: %s", simErr.Error()).
			WithDebug(im.debug(cfg, s, reg, m, tx.Value, simErr))
	}

	if err := im.sessions.Delete(c, id); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("failed to delete consumed session")
	}

	c.WithFields(log.Fields{
		"sessionId": id,
		"name":      s.Name(),
		"network":   cfg.Name,
		"value":     tx.Value,
	}).Info("register prepared")

	return &registration.RegisterResult{
		Tx:                   tx,
		Price:                price,
		CommitmentAgeSeconds: m.Age,
		Name:                 s.Name(),
		Network:              cfg.Name,
	}, nil
}

func (im *impl) debug(cfg ens.NetworkConfig, s *registration.Session, reg ens.Registration, m *ens.Maturity, value string, simErr *ens.SimulationError) map[string]interface{} {
	return map[string]interface{}{
		"commitment":        s.Commitment.Hex(),
		"commitmentAge":     m.Age,
		"commitTimestamp":   m.CommitTimestamp,
		"network":           cfg.Name,
		"controller":        cfg.RegistrarController,
		"layout":            cfg.Layout.String(),
		"label":             reg.Label,
		"owner":             reg.Owner.Hex(),
		"resolver":          reg.Resolver.Hex(),
		"duration":          reg.Duration.String(),
		"setPrimary":        reg.ReverseRecord,
		"resolverDataCount": len(reg.Data),
		"valueWei":          value,
		"revertReason":      simErr.Reason,
		"revertData":        hexutil.Encode(simErr.RevertData),
	}
}
