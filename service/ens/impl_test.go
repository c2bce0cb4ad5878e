package ens

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	domainEns "github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/service/chain"
)

// fakeBackend answers registry and resolver views from in-memory records
type fakeBackend struct {
	bind.ContractBackend

	resolvers    map[common.Hash]common.Address
	addrs        map[common.Hash]common.Address
	texts        map[common.Hash]map[string]string
	names        map[common.Hash]string
	contenthashs map[common.Hash][]byte
	calls        int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		resolvers:    map[common.Hash]common.Address{},
		addrs:        map[common.Hash]common.Address{},
		texts:        map[common.Hash]map[string]string{},
		names:        map[common.Hash]string{},
		contenthashs: map[common.Hash][]byte{},
	}
}

func (f *fakeBackend) method(id []byte) (*ethabi.Method, error) {
	if m, err := baseabi.ENSRegistryABI.MethodById(id); err == nil {
		return m, nil
	}
	return baseabi.PublicResolverABI.MethodById(id)
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++
	m, err := f.method(msg.Data[:4])
	if err != nil {
		return nil, errors.New("execution reverted")
	}
	args, err := m.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}
	node := common.Hash(args[0].([32]byte))
	switch m.Name {
	case "resolver":
		return m.Outputs.Pack(f.resolvers[node])
	case "addr":
		return m.Outputs.Pack(f.addrs[node])
	case "text":
		return m.Outputs.Pack(f.texts[node][args[1].(string)])
	case "name":
		return m.Outputs.Pack(f.names[node])
	case "contenthash":
		return m.Outputs.Pack(f.contenthashs[node])
	}
	return nil, errors.New("execution reverted")
}

type ensSuite struct {
	suite.Suite

	ctx      ctx.Ctx
	cfg      domainEns.NetworkConfig
	backend  *fakeBackend
	resolver common.Address
	im       domainEns.Resolver
}

func (s *ensSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.cfg = domainEns.BuiltinNetworks[domainEns.NetworkSepolia]
	s.backend = newFakeBackend()
	s.resolver = common.HexToAddress(string(s.cfg.Resolver))
	client := chain.NewClientWithBackends(map[domain.ChainId]bind.ContractBackend{
		s.cfg.ChainId: s.backend,
	})
	s.im = New(client, nil)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) node(name string) common.Hash {
	h, err := domainEns.NameHash(name)
	s.Require().NoError(err)
	return h
}

func (s *ensSuite) TestResolverOfIsCached() {
	s.backend.resolvers[s.node("alice.eth")] = s.resolver

	addr, err := s.im.ResolverOf(s.ctx, s.cfg, "alice.eth")
	s.Require().NoError(err)
	s.Equal(s.resolver, addr)
	calls := s.backend.calls

	addr, err = s.im.ResolverOf(s.ctx, s.cfg, "alice.eth")
	s.Require().NoError(err)
	s.Equal(s.resolver, addr)
	s.Equal(calls, s.backend.calls)
}

func (s *ensSuite) TestUnsetResolverIsNotCached() {
	addr, err := s.im.ResolverOf(s.ctx, s.cfg, "nobody.eth")
	s.Require().NoError(err)
	s.Equal(common.Address{}, addr)
	calls := s.backend.calls

	_, err = s.im.ResolverOf(s.ctx, s.cfg, "nobody.eth")
	s.Require().NoError(err)
	s.Greater(s.backend.calls, calls)
}

func (s *ensSuite) TestRecords() {
	node := s.node("alice.eth")
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	s.backend.resolvers[node] = s.resolver
	s.backend.addrs[node] = owner
	s.backend.texts[node] = map[string]string{"avatar": "https://example.com/a.png"}
	s.backend.contenthashs[node] = common.Hex2Bytes("e301017012201234")

	addr, err := s.im.Address(s.ctx, s.cfg, "alice.eth")
	s.Require().NoError(err)
	s.Equal(owner, addr)

	txt, err := s.im.Text(s.ctx, s.cfg, "alice.eth", "avatar")
	s.Require().NoError(err)
	s.Equal("https://example.com/a.png", txt)

	missing, err := s.im.Text(s.ctx, s.cfg, "alice.eth", "url")
	s.Require().NoError(err)
	s.Empty(missing)

	ch, err := s.im.Contenthash(s.ctx, s.cfg, "alice.eth")
	s.Require().NoError(err)
	s.Equal(common.Hex2Bytes("e301017012201234"), ch)
}

func (s *ensSuite) TestAddressWithoutResolver() {
	_, err := s.im.Address(s.ctx, s.cfg, "nobody.eth")
	s.ErrorIs(err, domain.ErrNotRegistered)
}

func (s *ensSuite) TestPrimaryName() {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	rnode := s.node(reverseName(owner))
	s.backend.resolvers[rnode] = s.resolver
	s.backend.names[rnode] = "alice.eth"

	node := s.node("alice.eth")
	s.backend.resolvers[node] = s.resolver
	s.backend.addrs[node] = owner

	name, err := s.im.PrimaryName(s.ctx, s.cfg, owner)
	s.Require().NoError(err)
	s.Equal("alice.eth", name)
}

func (s *ensSuite) TestPrimaryNameMustResolveBack() {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	other := common.HexToAddress("0x2222222222222222222222222222222222222222")
	rnode := s.node(reverseName(owner))
	s.backend.resolvers[rnode] = s.resolver
	s.backend.names[rnode] = "alice.eth"

	node := s.node("alice.eth")
	s.backend.resolvers[node] = s.resolver
	s.backend.addrs[node] = other

	name, err := s.im.PrimaryName(s.ctx, s.cfg, owner)
	s.Require().NoError(err)
	s.Empty(name)
}

func (s *ensSuite) TestPrimaryNameUnset() {
	name, err := s.im.PrimaryName(s.ctx, s.cfg, common.HexToAddress("0x3333333333333333333333333333333333333333"))
	s.Require().NoError(err)
	s.Empty(name)
}

func (s *ensSuite) TestReverseName() {
	addr := common.HexToAddress("0xAbCdEf0000000000000000000000000000000001")
	s.Equal("abcdef0000000000000000000000000000000001.addr.reverse", reverseName(addr))
}
