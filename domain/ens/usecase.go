package ens

import (
	"github.com/x-xyz/ensagent/base/ctx"
)

type CheckResult struct {
	Available       bool   `json:"available"`
	Label           string `json:"label"`
	Name            string `json:"name"`
	Price           *Price `json:"price"`
	DurationSeconds int64  `json:"durationSeconds"`
	Network         string `json:"network"`
}

type RenewParams struct {
	Label    string `json:"label" validate:"required"`
	Duration string `json:"duration" validate:"omitempty,duration"`
	Network  string `json:"network"`
}

type RenewResult struct {
	Tx              *UnsignedTx `json:"tx"`
	Name            string      `json:"name"`
	Price           Price       `json:"price"`
	DurationSeconds int64       `json:"durationSeconds"`
	Network         string      `json:"network"`
}

type TransferParams struct {
	Label   string `json:"label" validate:"required"`
	From    string `json:"from" validate:"required,address"`
	To      string `json:"to" validate:"required,address"`
	Network string `json:"network"`
}

type TransferResult struct {
	Tx      *UnsignedTx `json:"tx"`
	Name    string      `json:"name"`
	TokenId string      `json:"tokenId"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	Network string      `json:"network"`
}

type PrimaryParams struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required,address"`
	// Owner defaults to Address
	Owner   string `json:"owner" validate:"omitempty,address"`
	Network string `json:"network"`
}

type PrimaryResult struct {
	Tx      *UnsignedTx `json:"tx"`
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Network string      `json:"network"`
}

type RecordsParams struct {
	Name string `json:"name" validate:"required"`
	// Texts maps text record keys to values
	Texts   map[string]string `json:"texts"`
	Address string            `json:"address" validate:"omitempty,address"`
	// Resolver defaults to the network's public resolver
	Resolver string `json:"resolver" validate:"omitempty,address"`
	Network  string `json:"network"`
}

type RecordsResult struct {
	Tx         *UnsignedTx `json:"tx"`
	RecordsSet []string    `json:"recordsSet"`
	Warnings   []string    `json:"warnings"`
	Name       string      `json:"name"`
	Network    string      `json:"network"`
}

type SubnameParams struct {
	Label string `json:"label" validate:"required"`
	// Parent defaults to "eth"
	Parent string `json:"parent"`
	Owner  string `json:"owner" validate:"required,address"`
	// Address defaults to Owner
	Address string `json:"address" validate:"omitempty,address"`
	// Reverse defaults to true
	Reverse *bool  `json:"reverse"`
	Network string `json:"network"`
}

type SubnameStep struct {
	Step string      `json:"step"`
	Tx   *UnsignedTx `json:"tx"`
}

const (
	StepCreateSubname = "create_subname"
	StepSetAddress    = "set_address"
	StepSetReverse    = "set_reverse"
)

type SubnameResult struct {
	Transactions []SubnameStep `json:"transactions"`
	Name         string        `json:"name"`
	Parent       string        `json:"parent"`
	ParentNode   string        `json:"parentNode"`
	LabelHash    string        `json:"labelHash"`
	SubnameNode  string        `json:"subnameNode"`
	Owner        string        `json:"owner"`
	Address      string        `json:"address"`
	Network      string        `json:"network"`
}

type ResolveParams struct {
	Input       string
	Network     string
	Text        string
	Contenthash bool
}

type ResolveType string

const (
	ResolveForward ResolveType = "forward"
	ResolveReverse ResolveType = "reverse"
)

type TextRecord struct {
	Key       string  `json:"key"`
	Value     *string `json:"value"`
	AvatarUrl *string `json:"avatarUrl,omitempty"`
}

type Contenthash struct {
	Raw     string `json:"raw"`
	Decoded string `json:"decoded"`
}

type ResolveResult struct {
	Input       string       `json:"input"`
	Type        ResolveType  `json:"type"`
	Name        string       `json:"name,omitempty"`
	Address     *string      `json:"address,omitempty"`
	Text        *TextRecord  `json:"text,omitempty"`
	Contenthash *Contenthash `json:"contenthash,omitempty"`
	Resolver    *string      `json:"resolver,omitempty"`
	Network     string       `json:"network"`
}

type HashResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Hash       string `json:"hash"`
}

// NamesUseCase covers the single transaction name operations
type NamesUseCase interface {
	Check(c ctx.Ctx, label, duration, network string) (*CheckResult, error)
	Renew(c ctx.Ctx, p RenewParams) (*RenewResult, error)
	Transfer(c ctx.Ctx, p TransferParams) (*TransferResult, error)
	SetPrimary(c ctx.Ctx, p PrimaryParams) (*PrimaryResult, error)
	SetRecords(c ctx.Ctx, p RecordsParams) (*RecordsResult, error)
	CreateSubname(c ctx.Ctx, p SubnameParams) (*SubnameResult, error)
	Resolve(c ctx.Ctx, p ResolveParams) (*ResolveResult, error)
	Namehash(name string) (*HashResult, error)
	Labelhash(label string) (*HashResult, error)
	Deployments() Networks
}
