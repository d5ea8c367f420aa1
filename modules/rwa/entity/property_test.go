package entity

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProperty() Property {
	return Property{
		Address:     solana.NewWallet().PublicKey(),
		Authority:   solana.NewWallet().PublicKey(),
		Mint:        solana.NewWallet().PublicKey(),
		Name:        "Alameda Santos 1287",
		Symbol:      "ALS1287",
		TotalSupply: 1000,
		Details: PropertyDetails{
			PropertyAddress: "Alameda Santos 1287, Sao Paulo",
			PropertyType:    "Residential",
			TotalValueUsd:   50_000_000,
			RentalYieldBps:  500,
			MetadataURI:     "https://example.com/metadata.json",
		},
		IsActive: true,
	}
}

func TestPropertyValidate(t *testing.T) {
	test := func(name string, mutate func(*Property), wantErr bool) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			property := validProperty()
			mutate(&property)
			err := property.Validate()
			if wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.InvalidArgument)
			} else {
				require.NoError(t, err)
			}
		})
	}

	test("valid", func(p *Property) {}, false)
	test("empty name", func(p *Property) { p.Name = "" }, true)
	test("name at limit", func(p *Property) { p.Name = strings.Repeat("a", MaxPropertyNameLen) }, false)
	test("name too long", func(p *Property) { p.Name = strings.Repeat("a", MaxPropertyNameLen+1) }, true)
	test("empty symbol", func(p *Property) { p.Symbol = "" }, true)
	test("symbol too long", func(p *Property) { p.Symbol = strings.Repeat("a", MaxPropertySymbolLen+1) }, true)
	test("zero total supply", func(p *Property) { p.TotalSupply = 0 }, true)
	test("address too long", func(p *Property) { p.Details.PropertyAddress = strings.Repeat("a", MaxPropertyAddressLen+1) }, true)
	test("type too long", func(p *Property) { p.Details.PropertyType = strings.Repeat("a", MaxPropertyTypeLen+1) }, true)
	test("uri too long", func(p *Property) { p.Details.MetadataURI = strings.Repeat("a", MaxMetadataURILen+1) }, true)
	test("yield at limit", func(p *Property) { p.Details.RentalYieldBps = MaxRentalYieldBps }, false)
	test("yield too high", func(p *Property) { p.Details.RentalYieldBps = MaxRentalYieldBps + 1 }, true)
}

func TestRemainingSupply(t *testing.T) {
	t.Parallel()
	property := validProperty()
	property.TotalSupply = 1000
	property.CirculatingSupply = 600

	assert.Equal(t, uint64(400), property.RemainingSupply())
	assert.True(t, property.CanMint(400))
	assert.False(t, property.CanMint(401))

	property.IsActive = false
	assert.False(t, property.CanMint(1))

	property.IsActive = true
	property.CirculatingSupply = 1000
	assert.Equal(t, uint64(0), property.RemainingSupply())
	assert.False(t, property.CanMint(1))
}

func TestDeriveAddresses(t *testing.T) {
	t.Parallel()
	program := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	address, err := PropertyAddress(program, mint)
	require.NoError(t, err)
	again, err := PropertyAddress(program, mint)
	require.NoError(t, err)
	assert.Equal(t, address, again)

	otherMint := solana.NewWallet().PublicKey()
	other, err := PropertyAddress(program, otherMint)
	require.NoError(t, err)
	assert.NotEqual(t, address, other)

	epoch1, err := RevenueEpochAddress(program, address, 1)
	require.NoError(t, err)
	epoch2, err := RevenueEpochAddress(program, address, 2)
	require.NoError(t, err)
	assert.NotEqual(t, epoch1, epoch2)

	vault1, err := RevenueVaultAddress(program, address, 1)
	require.NoError(t, err)
	assert.NotEqual(t, epoch1, vault1)
}

func TestDeriveAddressesDeterministicAcrossCalls(t *testing.T) {
	t.Parallel()
	program := solana.NewWallet().PublicKey()
	property := solana.NewWallet().PublicKey()

	for epochNumber := uint64(0); epochNumber < 3; epochNumber++ {
		first, err := RevenueVaultAddress(program, property, epochNumber)
		require.NoError(t, err)
		second, err := RevenueVaultAddress(program, property, epochNumber)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
