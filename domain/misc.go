package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int32

const (
	ChainMainnet ChainId = 1
	ChainSepolia ChainId = 11155111
)

// Address is a contract address as written in config, checksummed or not
type Address string

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// Common parses the address, an invalid one becomes the zero address
func (a Address) Common() common.Address {
	return common.HexToAddress(string(a))
}
