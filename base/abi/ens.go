package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	// ETHRegistrarControllerV3ABI is the controller with positional makeCommitment/register params (mainnet)
	ETHRegistrarControllerV3ABI abi.ABI
	// ETHRegistrarControllerV4ABI is the controller taking a Registration struct (sepolia)
	ETHRegistrarControllerV4ABI abi.ABI
	ENSRegistryABI              abi.ABI
	PublicResolverABI           abi.ABI
	ReverseRegistrarABI         abi.ABI
	BaseRegistrarABI            abi.ABI

	// RegistrationTupleType is `(string,address,uint256,bytes32,address,bytes[],uint8,bytes32)`
	RegistrationTupleType abi.Type
)

const controllerCommonABI = `{"type":"function","name":"available","stateMutability":"view","inputs":[{"type":"string","name":"label"}],"outputs":[{"type":"bool"}]},` +
	`{"type":"function","name":"rentPrice","stateMutability":"view","inputs":[{"type":"string","name":"label"},{"type":"uint256","name":"duration"}],"outputs":[{"type":"uint256","name":"base"},{"type":"uint256","name":"premium"}]},` +
	`{"type":"function","name":"commit","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"commitment"}],"outputs":[]},` +
	`{"type":"function","name":"commitments","stateMutability":"view","inputs":[{"type":"bytes32","name":"commitment"}],"outputs":[{"type":"uint256"}]},` +
	`{"type":"function","name":"minCommitmentAge","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},` +
	`{"type":"function","name":"maxCommitmentAge","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]}`

var controllerV3ABI = `[` + controllerCommonABI + `,` +
	`{"type":"function","name":"makeCommitment","stateMutability":"pure","inputs":[{"type":"string","name":"name"},{"type":"address","name":"owner"},{"type":"uint256","name":"duration"},{"type":"bytes32","name":"secret"},{"type":"address","name":"resolver"},{"type":"bytes[]","name":"data"},{"type":"bool","name":"reverseRecord"},{"type":"uint16","name":"ownerControlledFuses"}],"outputs":[{"type":"bytes32"}]},` +
	`{"type":"function","name":"register","stateMutability":"payable","inputs":[{"type":"string","name":"name"},{"type":"address","name":"owner"},{"type":"uint256","name":"duration"},{"type":"bytes32","name":"secret"},{"type":"address","name":"resolver"},{"type":"bytes[]","name":"data"},{"type":"bool","name":"reverseRecord"},{"type":"uint16","name":"ownerControlledFuses"}],"outputs":[]},` +
	`{"type":"function","name":"renew","stateMutability":"payable","inputs":[{"type":"string","name":"name"},{"type":"uint256","name":"duration"}],"outputs":[]}` +
	`]`

const registrationTuple = `{"type":"tuple","name":"registration","components":[{"type":"string","name":"label"},{"type":"address","name":"owner"},{"type":"uint256","name":"duration"},{"type":"bytes32","name":"secret"},{"type":"address","name":"resolver"},{"type":"bytes[]","name":"data"},{"type":"uint8","name":"reverseRecord"},{"type":"bytes32","name":"referrer"}]}`

var controllerV4ABI = `[` + controllerCommonABI + `,` +
	`{"type":"function","name":"makeCommitment","stateMutability":"pure","inputs":[` + registrationTuple + `],"outputs":[{"type":"bytes32"}]},` +
	`{"type":"function","name":"register","stateMutability":"payable","inputs":[` + registrationTuple + `],"outputs":[]},` +
	`{"type":"function","name":"renew","stateMutability":"payable","inputs":[{"type":"string","name":"label"},{"type":"uint256","name":"duration"},{"type":"bytes32","name":"referrer"}],"outputs":[]}` +
	`]`

var registryABI = `[{"type":"function","name":"owner","stateMutability":"view","inputs":[{"type":"bytes32","name":"node"}],"outputs":[{"type":"address"}]},{"type":"function","name":"resolver","stateMutability":"view","inputs":[{"type":"bytes32","name":"node"}],"outputs":[{"type":"address"}]},{"type":"function","name":"setSubnodeRecord","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"parentNode"},{"type":"bytes32","name":"labelHash"},{"type":"address","name":"owner"},{"type":"address","name":"resolver"},{"type":"uint64","name":"ttl"}],"outputs":[]}]`

var resolverABI = `[{"type":"function","name":"setAddr","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"node"},{"type":"address","name":"a"}],"outputs":[]},{"type":"function","name":"setText","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"node"},{"type":"string","name":"key"},{"type":"string","name":"value"}],"outputs":[]},{"type":"function","name":"addr","stateMutability":"view","inputs":[{"type":"bytes32","name":"node"}],"outputs":[{"type":"address"}]},{"type":"function","name":"text","stateMutability":"view","inputs":[{"type":"bytes32","name":"node"},{"type":"string","name":"key"}],"outputs":[{"type":"string"}]},{"type":"function","name":"contenthash","stateMutability":"view","inputs":[{"type":"bytes32","name":"node"}],"outputs":[{"type":"bytes"}]},{"type":"function","name":"name","stateMutability":"view","inputs":[{"type":"bytes32","name":"node"}],"outputs":[{"type":"string"}]},{"type":"function","name":"multicall","stateMutability":"nonpayable","inputs":[{"type":"bytes[]","name":"data"}],"outputs":[{"type":"bytes[]","name":"results"}]}]`

var reverseRegistrarABI = `[{"type":"function","name":"setNameForAddr","stateMutability":"nonpayable","inputs":[{"type":"address","name":"addr"},{"type":"address","name":"owner"},{"type":"address","name":"resolver"},{"type":"string","name":"name"}],"outputs":[{"type":"bytes32"}]},{"type":"function","name":"node","stateMutability":"pure","inputs":[{"type":"address","name":"addr"}],"outputs":[{"type":"bytes32"}]}]`

var baseRegistrarABI = `[{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"nameExpires","stateMutability":"view","inputs":[{"type":"uint256","name":"id"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]}]`

func mustParse(name, raw string) abi.ABI {
	_abi, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("Failed to parse " + name + " abi: " + err.Error())
	}
	return _abi
}

func init() {
	ETHRegistrarControllerV3ABI = mustParse("controller v3", controllerV3ABI)
	ETHRegistrarControllerV4ABI = mustParse("controller v4", controllerV4ABI)
	ENSRegistryABI = mustParse("registry", registryABI)
	PublicResolverABI = mustParse("resolver", resolverABI)
	ReverseRegistrarABI = mustParse("reverse registrar", reverseRegistrarABI)
	BaseRegistrarABI = mustParse("base registrar", baseRegistrarABI)
	RegistrationTupleType = ETHRegistrarControllerV4ABI.Methods["register"].Inputs[0].Type
}
