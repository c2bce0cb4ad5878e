package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ChainlinkFeedABI is the read side of an AggregatorV3 proxy
var ChainlinkFeedABI abi.ABI

var chainlinkFeedABI = `[{"type":"function","name":"latestAnswer","stateMutability":"view","inputs":[],"outputs":[{"type":"int256"}]},{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"type":"uint8"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(chainlinkFeedABI))
	if err != nil {
		panic("Failed to parse chainlink feed abi")
	}
	ChainlinkFeedABI = _abi
}
