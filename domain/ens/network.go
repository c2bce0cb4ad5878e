package ens

import (
	"sort"
	"strings"

	"github.com/x-xyz/ensagent/domain"
)

// Layout is the argument shape of a registrar controller's makeCommitment/register
type Layout int

const (
	// LayoutPositional is the (name, owner, duration, secret, resolver, data, reverseRecord, fuses) controller
	LayoutPositional Layout = iota
	// LayoutStruct is the controller taking a single Registration tuple
	LayoutStruct
)

func (l Layout) String() string {
	switch l {
	case LayoutStruct:
		return "struct"
	default:
		return "positional"
	}
}

const (
	NetworkMainnet = "mainnet"
	NetworkSepolia = "sepolia"

	DefaultNetwork = NetworkSepolia
)

type NetworkConfig struct {
	Name                string         `json:"name" mapstructure:"name"`
	ChainId             domain.ChainId `json:"chainId" mapstructure:"chainId"`
	RpcUrl              string         `json:"-" mapstructure:"rpcUrl"`
	Layout              Layout         `json:"-" mapstructure:"-"`
	Registry            domain.Address `json:"registry" mapstructure:"registry"`
	Resolver            domain.Address `json:"publicResolver" mapstructure:"resolver"`
	RegistrarController domain.Address `json:"registrarController" mapstructure:"registrarController"`
	BaseRegistrar       domain.Address `json:"baseRegistrar" mapstructure:"baseRegistrar"`
	NameWrapper         domain.Address `json:"nameWrapper" mapstructure:"nameWrapper"`
	ReverseRegistrar    domain.Address `json:"reverseRegistrar" mapstructure:"reverseRegistrar"`
	UniversalResolver   domain.Address `json:"universalResolver" mapstructure:"universalResolver"`
	ExplorerUrl         string         `json:"explorerUrl" mapstructure:"explorerUrl"`
	// EthUsdFeed is the chainlink ETH/USD proxy used for usd estimates, optional
	EthUsdFeed domain.Address `json:"ethUsdFeed,omitempty" mapstructure:"ethUsdFeed"`
}

// BuiltinNetworks are the ENS deployments used when configuration omits addresses
var BuiltinNetworks = map[string]NetworkConfig{
	NetworkMainnet: {
		Name:                NetworkMainnet,
		ChainId:             domain.ChainMainnet,
		RpcUrl:              "https://eth.drpc.org",
		Layout:              LayoutPositional,
		Registry:            "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e",
		Resolver:            "0x231b0Ee14048e9dCcD1d247744d114a4EB5E8E63",
		RegistrarController: "0x253553366Da8546fC250F225fe3d25d0C782303b",
		BaseRegistrar:       "0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85",
		NameWrapper:         "0xD4416b13d2b3a9aBae7AcD5D6C2BbDBE25686401",
		ReverseRegistrar:    "0xa58E81fe9b61B5c3fE2AFD33CF304c454AbFc7Cb",
		UniversalResolver:   "0xeEeEEEeE14D718C2B47D9923Deab1335E144EeEe",
		ExplorerUrl:         "https://etherscan.io",
		EthUsdFeed:          "0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419",
	},
	NetworkSepolia: {
		Name:                NetworkSepolia,
		ChainId:             domain.ChainSepolia,
		RpcUrl:              "https://sepolia.drpc.org",
		Layout:              LayoutStruct,
		Registry:            "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e",
		Resolver:            "0xE99638b40E4Fff0129D56f03b55b6bbC4BBE49b5",
		RegistrarController: "0xfb3cE5D01e0f33f41DbB39035dB9745962F1f968",
		BaseRegistrar:       "0x57f1887a8bf19b14fc0df6fd9b2acc9af147ea85",
		NameWrapper:         "0x0635513f179D50A207757E05759CbD106d7dFcE8",
		ReverseRegistrar:    "0xA0a1AbcDAe1a2a4A2EF8e9113Ff0e02DD81DC0C6",
		UniversalResolver:   "0xeEeEEEeE14D718C2B47D9923Deab1335E144EeEe",
		ExplorerUrl:         "https://sepolia.etherscan.io",
		EthUsdFeed:          "0x694AA1769357215DE4FAC081bf1f309aDC325306",
	},
}

// LayoutForChain returns the controller layout deployed on chainId
func LayoutForChain(chainId domain.ChainId) Layout {
	if chainId == 1 {
		return LayoutPositional
	}
	return LayoutStruct
}

// Networks is the set of networks the service talks to, keyed by name
type Networks map[string]NetworkConfig

// DefaultNetworks returns a copy of BuiltinNetworks
func DefaultNetworks() Networks {
	res := Networks{}
	for k, v := range BuiltinNetworks {
		res[k] = v
	}
	return res
}

// Get looks up a network by name, empty name falls back to DefaultNetwork
func (n Networks) Get(name string) (NetworkConfig, error) {
	if name == "" {
		name = DefaultNetwork
	}
	cfg, ok := n[strings.ToLower(name)]
	if !ok {
		return NetworkConfig{}, domain.NewError(domain.KindUnsupportedNetwork, "unsupported network %q, expected one of %s", name, strings.Join(n.Names(), ", "))
	}
	return cfg, nil
}

func (n Networks) Names() []string {
	names := make([]string, 0, len(n))
	for k := range n {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Merge fills the zero fields of override with the builtin deployment of the same name
func Merge(override NetworkConfig) NetworkConfig {
	base, ok := BuiltinNetworks[override.Name]
	if !ok {
		override.Layout = LayoutForChain(override.ChainId)
		return override
	}
	if override.ChainId == 0 {
		override.ChainId = base.ChainId
	}
	if override.RpcUrl == "" {
		override.RpcUrl = base.RpcUrl
	}
	if override.Registry.IsEmpty() {
		override.Registry = base.Registry
	}
	if override.Resolver.IsEmpty() {
		override.Resolver = base.Resolver
	}
	if override.RegistrarController.IsEmpty() {
		override.RegistrarController = base.RegistrarController
	}
	if override.BaseRegistrar.IsEmpty() {
		override.BaseRegistrar = base.BaseRegistrar
	}
	if override.NameWrapper.IsEmpty() {
		override.NameWrapper = base.NameWrapper
	}
	if override.ReverseRegistrar.IsEmpty() {
		override.ReverseRegistrar = base.ReverseRegistrar
	}
	if override.UniversalResolver.IsEmpty() {
		override.UniversalResolver = base.UniversalResolver
	}
	if override.ExplorerUrl == "" {
		override.ExplorerUrl = base.ExplorerUrl
	}
	if override.EthUsdFeed.IsEmpty() {
		override.EthUsdFeed = base.EthUsdFeed
	}
	override.Layout = LayoutForChain(override.ChainId)
	return override
}
