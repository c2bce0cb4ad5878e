package ens

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/domain"
)

// Registration is every input of one commit-reveal registration.
// It is translated to a controller layout only when encoding.
type Registration struct {
	Label         string
	Owner         common.Address
	Duration      *big.Int
	Secret        [32]byte
	Resolver      common.Address
	Data          [][]byte
	ReverseRecord bool
	Referrer      [32]byte
}

// registrationTuple mirrors the controller's Registration struct, field names follow the abi components
type registrationTuple struct {
	Label         string
	Owner         common.Address
	Duration      *big.Int
	Secret        [32]byte
	Resolver      common.Address
	Data          [][]byte
	ReverseRecord uint8
	Referrer      [32]byte
}

var positionalCommitmentArgs ethabi.Arguments

func init() {
	mustType := func(t string) ethabi.Type {
		typ, err := ethabi.NewType(t, "", nil)
		if err != nil {
			panic(err)
		}
		return typ
	}
	positionalCommitmentArgs = ethabi.Arguments{
		{Type: mustType("bytes32")},
		{Type: mustType("address")},
		{Type: mustType("uint256")},
		{Type: mustType("bytes32")},
		{Type: mustType("address")},
		{Type: mustType("bytes[]")},
		{Type: mustType("bool")},
		{Type: mustType("uint16")},
	}
}

// Validate rejects registrations the controller would revert on before hashing
func (r Registration) Validate() error {
	if r.Label == "" {
		return domain.NewError(domain.KindMissingParam, "label is required")
	}
	if r.Duration == nil || r.Duration.Sign() <= 0 {
		return domain.NewError(domain.KindInvalidParam, "duration must be positive")
	}
	if len(r.Data) > 0 && r.Resolver == (common.Address{}) {
		return domain.NewError(domain.KindInvalidParam, "resolver is required when resolver data is supplied")
	}
	return nil
}

func (r Registration) tuple() registrationTuple {
	var reverse uint8
	if r.ReverseRecord {
		reverse = 1
	}
	return registrationTuple{
		Label:         r.Label,
		Owner:         r.Owner,
		Duration:      r.Duration,
		Secret:        r.Secret,
		Resolver:      r.Resolver,
		Data:          r.nonNilData(),
		ReverseRecord: reverse,
		Referrer:      r.Referrer,
	}
}

func (r Registration) nonNilData() [][]byte {
	if r.Data == nil {
		return [][]byte{}
	}
	return r.Data
}

// MakeCommitment computes the same value as the controller's makeCommitment view
func MakeCommitment(layout Layout, r Registration) (common.Hash, error) {
	if err := r.Validate(); err != nil {
		return common.Hash{}, err
	}

	var (
		encoded []byte
		err     error
	)
	switch layout {
	case LayoutStruct:
		encoded, err = ethabi.Arguments{{Type: baseabi.RegistrationTupleType}}.Pack(r.tuple())
	default:
		labelHash := crypto.Keccak256Hash([]byte(r.Label))
		encoded, err = positionalCommitmentArgs.Pack(
			[32]byte(labelHash),
			r.Owner,
			r.Duration,
			r.Secret,
			r.Resolver,
			r.nonNilData(),
			r.ReverseRecord,
			uint16(0),
		)
	}
	if err != nil {
		return common.Hash{}, domain.WrapError(domain.KindInternal, err, "failed to encode commitment")
	}
	return crypto.Keccak256Hash(encoded), nil
}

// MakeCommitmentArgs are the makeCommitment call arguments for layout, for checking against the chain
func MakeCommitmentArgs(layout Layout, r Registration) []interface{} {
	if layout == LayoutStruct {
		return []interface{}{r.tuple()}
	}
	return []interface{}{r.Label, r.Owner, r.Duration, r.Secret, r.Resolver, r.nonNilData(), r.ReverseRecord, uint16(0)}
}

// ControllerABI returns the controller abi of layout
func ControllerABI(layout Layout) ethabi.ABI {
	if layout == LayoutStruct {
		return baseabi.ETHRegistrarControllerV4ABI
	}
	return baseabi.ETHRegistrarControllerV3ABI
}
