package ens

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// DefaultPriceBufferPercent covers price drift between quote and inclusion
	DefaultPriceBufferPercent = 10
	// EthUsdDecimals is the precision of chainlink ETH/USD answers
	EthUsdDecimals = 8
)

type Amount struct {
	Wei   string `json:"wei"`
	Ether string `json:"ether"`
}

type Price struct {
	Base            Amount `json:"base"`
	Premium         Amount `json:"premium"`
	Total           Amount `json:"total"`
	TotalWithBuffer Amount `json:"totalWithBuffer"`
	// TotalUsd is an estimate of Total, empty when no price feed answered
	TotalUsd string `json:"totalUsd,omitempty"`

	totalWithBuffer *big.Int
}

// Value is the wei amount to attach to the transaction
func (p Price) Value() *big.Int {
	if p.totalWithBuffer == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.totalWithBuffer)
}

// WithBuffer returns total + total*percent/100 using integer division
func WithBuffer(total *big.Int, percent int64) *big.Int {
	buf := new(big.Int).Mul(total, big.NewInt(percent))
	buf.Quo(buf, big.NewInt(100))
	return buf.Add(buf, total)
}

func NewPrice(base, premium *big.Int, bufferPercent int64) Price {
	total := new(big.Int).Add(base, premium)
	withBuffer := WithBuffer(total, bufferPercent)
	return Price{
		Base:            NewAmount(base),
		Premium:         NewAmount(premium),
		Total:           NewAmount(total),
		TotalWithBuffer: NewAmount(withBuffer),
		totalWithBuffer: withBuffer,
	}
}

// SetUsd prices Total with an ETH/USD answer of EthUsdDecimals precision, rounded to cents
func (p *Price) SetUsd(ethUsd *big.Int) {
	if ethUsd == nil || ethUsd.Sign() <= 0 {
		return
	}
	total, err := decimal.NewFromString(p.Total.Ether)
	if err != nil {
		return
	}
	p.TotalUsd = total.Mul(decimal.NewFromBigInt(ethUsd, -EthUsdDecimals)).StringFixed(2)
}

func NewAmount(wei *big.Int) Amount {
	return Amount{
		Wei:   wei.String(),
		Ether: FormatEther(wei),
	}
}

// FormatEther renders wei as a decimal ether string without trailing zeros
func FormatEther(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -18).String()
}
