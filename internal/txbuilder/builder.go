// Package txbuilder maps domain intents onto calls of the energy token
// contract. It performs no I/O: the values it returns are consumed by the
// chain client, which encodes, signs and broadcasts them.
package txbuilder

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"

	"github.com/ethereum/go-ethereum/common"
)

// Contract functions used by the service.
const (
	FuncLogEnergy   = "logEnergy"
	FuncMintToken   = "mintToken"
	FuncTransfer    = "transfer"
	FuncBurnFrom    = "burnFrom"
	FuncBalanceOf   = "balanceOf"
	FuncTotalSupply = "totalSupply"
)

// DefaultTokenURI is the metadata URI attached to logEnergy calls when none
// is configured.
const DefaultTokenURI = "ipfs://your-default-metadata-uri"

// PendingTransaction is a state-changing contract call ready to be priced,
// signed and broadcast.
type PendingTransaction struct {
	Function string         // contract function name
	Args     []any          // ordered arguments, typed for ABI packing
	From     common.Address // account that signs and pays
	Gas      uint64         // gas limit; zero lets the chain client estimate it
}

// Call is a read-only contract call.
type Call struct {
	Function string
	Args     []any
}

// Builder creates the contract calls of the service on behalf of a single
// sending account.
type Builder struct {
	from        common.Address
	mintPerUnit uint64
	tokenURI    string
}

// Option customizes a Builder.
type Option func(*Builder)

// WithMintPerUnit sets how many token units are minted per energy unit.
func WithMintPerUnit(n uint64) Option {
	return func(b *Builder) {
		b.mintPerUnit = n
	}
}

// WithTokenURI sets the metadata URI passed to logEnergy.
func WithTokenURI(uri string) Option {
	return func(b *Builder) {
		if uri != "" {
			b.tokenURI = uri
		}
	}
}

// New creates a Builder for transactions sent by from.
func New(from common.Address, opts ...Option) *Builder {
	b := &Builder{
		from:        from,
		mintPerUnit: 1,
		tokenURI:    DefaultTokenURI,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Sender returns the account every built transaction is sent from.
func (b *Builder) Sender() common.Address {
	return b.from
}

func (b *Builder) pending(function string, args ...any) PendingTransaction {
	return PendingTransaction{
		Function: function,
		Args:     args,
		From:     b.from,
	}
}

// LogEnergy builds the logEnergy call crediting wallet for units of produced
// energy. It also returns the number of token units the call mints.
func (b *Builder) LogEnergy(wallet string, units float64) (PendingTransaction, *big.Int, error) {
	account, err := ParseAddress(wallet)
	if err != nil {
		return PendingTransaction{}, nil, err
	}

	if math.IsNaN(units) || math.IsInf(units, 0) || units <= 0 {
		return PendingTransaction{}, nil, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("units must be a positive number, got %v", units))
	}

	tokenUnits := TokenUnits(units, b.mintPerUnit)
	return b.pending(FuncLogEnergy, account, tokenUnits, b.tokenURI), tokenUnits, nil
}

// Mint builds the mintToken call crediting wallet with amount raw units.
func (b *Builder) Mint(wallet string, amount int64) (PendingTransaction, error) {
	account, err := ParseAddress(wallet)
	if err != nil {
		return PendingTransaction{}, err
	}

	if amount < 0 {
		return PendingTransaction{}, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("amount must not be negative, got %d", amount))
	}

	return b.pending(FuncMintToken, account, big.NewInt(amount)), nil
}

// Transfer builds the transfer call moving amount raw units from the sending
// account to receiver. Fractional amounts are truncated toward zero.
func (b *Builder) Transfer(receiver string, amount float64) (PendingTransaction, error) {
	account, err := ParseAddress(receiver)
	if err != nil {
		return PendingTransaction{}, err
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return PendingTransaction{}, err
	}

	return b.pending(FuncTransfer, account, value), nil
}

// Burn builds the burnFrom call destroying amount raw units held by wallet.
// Fractional amounts are truncated toward zero.
func (b *Builder) Burn(wallet string, amount float64) (PendingTransaction, error) {
	account, err := ParseAddress(wallet)
	if err != nil {
		return PendingTransaction{}, err
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return PendingTransaction{}, err
	}

	return b.pending(FuncBurnFrom, account, value), nil
}

// BalanceOf builds the read of the token balance of account.
func BalanceOf(account string) (Call, error) {
	address, err := ParseAddress(account)
	if err != nil {
		return Call{}, err
	}

	return Call{Function: FuncBalanceOf, Args: []any{address}}, nil
}

// TotalSupply builds the read of the token supply.
func TotalSupply() Call {
	return Call{Function: FuncTotalSupply}
}

// ParseAddress parses a hex EVM address, accepting any letter case.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("invalid address %q", s))
	}

	return common.HexToAddress(s), nil
}

// ParseAmount converts a raw token amount to an integer, truncating toward
// zero. Negative and non-finite amounts are rejected.
func ParseAmount(amount float64) (*big.Int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("amount must be a non-negative number, got %v", amount))
	}

	value, _ := big.NewFloat(amount).Int(nil)
	return value, nil
}

// TokenUnits returns the token units minted for units of energy:
// floor(units * mintPerUnit) with the product rounded to float64, and never
// less than one.
func TokenUnits(units float64, mintPerUnit uint64) *big.Int {
	product := math.Floor(units * float64(mintPerUnit))
	if !(product >= 1) || math.IsInf(product, 0) {
		return big.NewInt(1)
	}

	if product < 1<<53 {
		return big.NewInt(int64(product))
	}

	tokens, _ := big.NewFloat(product).Int(nil)
	return tokens
}
