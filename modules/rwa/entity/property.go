package entity

import (
	"encoding/binary"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

const (
	MaxPropertyNameLen    = 50
	MaxPropertySymbolLen  = 10
	MaxPropertyAddressLen = 200
	MaxPropertyTypeLen    = 100
	MaxMetadataURILen     = 500

	// MaxRentalYieldBps is 100% annual yield in basis points.
	MaxRentalYieldBps = 10000
)

// Record address derivation seeds. Addresses are deterministic so any caller
// can locate a record without a lookup table.
var (
	PropertySeed     = []byte("property")
	RevenueEpochSeed = []byte("revenue_epoch")
	RevenueVaultSeed = []byte("revenue_vault")
	ClaimRecordSeed  = []byte("claim_record")
)

// PropertyDetails holds free-text metadata for a tokenized property.
type PropertyDetails struct {
	// PropertyAddress is the physical address of the property.
	PropertyAddress string
	// PropertyType describes the property, e.g. "Residential", "Commercial".
	PropertyType string
	// TotalValueUsd is the total property value in USD cents.
	TotalValueUsd uint64
	// RentalYieldBps is the annual rental yield in basis points (500 = 5.00%).
	RentalYieldBps uint16
	// MetadataURI points to off-chain metadata (legal documents, photos).
	MetadataURI string
}

func (d PropertyDetails) Validate() error {
	if len(d.PropertyAddress) > MaxPropertyAddressLen {
		return errors.Wrapf(errs.InvalidArgument, "property address length must not exceed %d", MaxPropertyAddressLen)
	}
	if len(d.PropertyType) > MaxPropertyTypeLen {
		return errors.Wrapf(errs.InvalidArgument, "property type length must not exceed %d", MaxPropertyTypeLen)
	}
	if len(d.MetadataURI) > MaxMetadataURILen {
		return errors.Wrapf(errs.InvalidArgument, "metadata uri length must not exceed %d", MaxMetadataURILen)
	}
	if d.RentalYieldBps > MaxRentalYieldBps {
		return errors.Wrapf(errs.InvalidArgument, "rental yield must not exceed %d bps", MaxRentalYieldBps)
	}
	return nil
}

// Property is the ledger record for one tokenized asset. It is append-only:
// records are never destroyed, only mutated by supply and authority updates.
type Property struct {
	// Address is the deterministic record address, derived from the mint.
	Address solana.PublicKey
	// Authority can mint tokens, update details and deposit revenue.
	Authority solana.PublicKey
	// Mint is the asset-ledger identifier for the property token.
	Mint   solana.PublicKey
	Name   string
	Symbol string
	// TotalSupply is the immutable issuance cap set at creation.
	TotalSupply uint64
	// CirculatingSupply satisfies 0 <= CirculatingSupply <= TotalSupply.
	CirculatingSupply uint64
	Details           PropertyDetails
	// IsActive gates new issuance and revenue deposits.
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Property) Validate() error {
	if p.Name == "" || len(p.Name) > MaxPropertyNameLen {
		return errors.Wrapf(errs.InvalidArgument, "property name length must be 1-%d", MaxPropertyNameLen)
	}
	if p.Symbol == "" || len(p.Symbol) > MaxPropertySymbolLen {
		return errors.Wrapf(errs.InvalidArgument, "property symbol length must be 1-%d", MaxPropertySymbolLen)
	}
	if p.TotalSupply == 0 {
		return errors.Wrap(errs.InvalidArgument, "total supply must be positive")
	}
	if err := p.Details.Validate(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// CanMint reports whether amount more tokens can be issued.
func (p Property) CanMint(amount uint64) bool {
	return p.IsActive && amount <= p.RemainingSupply()
}

// RemainingSupply returns the number of tokens still mintable under the cap.
func (p Property) RemainingSupply() uint64 {
	if p.CirculatingSupply > p.TotalSupply {
		return 0
	}
	return p.TotalSupply - p.CirculatingSupply
}

// PropertyAddress derives the deterministic record address for the property
// backed by the given mint.
func PropertyAddress(program, mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress([][]byte{PropertySeed, mint.Bytes()}, program)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive property address")
	}
	return address, nil
}

// RevenueEpochAddress derives the record address for one distribution epoch.
func RevenueEpochAddress(program, property solana.PublicKey, epochNumber uint64) (solana.PublicKey, error) {
	var num [8]byte
	binary.LittleEndian.PutUint64(num[:], epochNumber)
	address, _, err := solana.FindProgramAddress([][]byte{RevenueEpochSeed, property.Bytes(), num[:]}, program)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive revenue epoch address")
	}
	return address, nil
}

// RevenueVaultAddress derives the epoch-scoped custody account address.
func RevenueVaultAddress(program, property solana.PublicKey, epochNumber uint64) (solana.PublicKey, error) {
	var num [8]byte
	binary.LittleEndian.PutUint64(num[:], epochNumber)
	address, _, err := solana.FindProgramAddress([][]byte{RevenueVaultSeed, property.Bytes(), num[:]}, program)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive revenue vault address")
	}
	return address, nil
}
