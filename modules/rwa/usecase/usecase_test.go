package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/modules/rwa/compliance"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/modules/rwa/hook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// credentialSource serves the gate from the gateway's issuer mirror, the same
// wiring the module uses with the "postgres" attestation source.
type credentialSource struct {
	gw *memDataGateway
}

func (s credentialSource) GetAccount(ctx context.Context, address solana.PublicKey) (attestation.Account, error) {
	return s.gw.GetCredentialAccount(ctx, address)
}

type usecaseFixture struct {
	gw            *memDataGateway
	uc            *Usecase
	program       solana.PublicKey
	issuerProgram solana.PublicKey
	authority     solana.PublicKey
}

func newUsecaseFixture(t *testing.T) *usecaseFixture {
	t.Helper()
	gw := newMemDataGateway()
	program := solana.NewWallet().PublicKey()
	issuerProgram := solana.NewWallet().PublicKey()
	gate := compliance.NewGate(issuerProgram, credentialSource{gw: gw}, nil)
	interceptor := hook.NewInterceptor(gate, nil)
	return &usecaseFixture{
		gw:            gw,
		uc:            New(gw, gate, interceptor, program),
		program:       program,
		issuerProgram: issuerProgram,
		authority:     solana.NewWallet().PublicKey(),
	}
}

// grant mirrors an active credential for the subject into the gateway.
func (f *usecaseFixture) grant(t *testing.T, subject solana.PublicKey) {
	t.Helper()
	address, err := attestation.CredentialAddress(f.issuerProgram, subject)
	require.NoError(t, err)
	require.NoError(t, f.gw.UpsertCredentialAccount(context.Background(), attestation.Account{
		Address: address,
		Owner:   f.issuerProgram,
		Data: attestation.Encode(attestation.Credential{
			Subject:   subject,
			Issuer:    f.issuerProgram,
			Type:      attestation.TypeKycBasic,
			Status:    attestation.StatusActive,
			IssuedAt:  time.Now().Add(-time.Hour).Truncate(time.Second).UTC(),
			ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second).UTC(),
		}),
	}))
}

func (f *usecaseFixture) createProperty(t *testing.T, totalSupply uint64) entity.Property {
	t.Helper()
	property, err := f.uc.CreateProperty(context.Background(), CreatePropertyParams{
		Authority:   f.authority,
		Mint:        solana.NewWallet().PublicKey(),
		Name:        "Alameda Santos 1287",
		Symbol:      "ALS1287",
		TotalSupply: totalSupply,
		Details: entity.PropertyDetails{
			PropertyAddress: "Alameda Santos 1287, Sao Paulo",
			PropertyType:    "Residential",
			TotalValueUsd:   50_000_000,
			RentalYieldBps:  500,
			MetadataURI:     "https://example.com/metadata.json",
		},
	})
	require.NoError(t, err)
	return property
}

func (f *usecaseFixture) balance(t *testing.T, property entity.Property, holder solana.PublicKey) uint64 {
	t.Helper()
	balance, err := f.gw.GetBalance(context.Background(), property.Mint, holder)
	require.NoError(t, err)
	return balance
}

func (f *usecaseFixture) funding(t *testing.T, account solana.PublicKey) uint64 {
	t.Helper()
	balance, err := f.gw.GetFundingBalance(context.Background(), account)
	require.NoError(t, err)
	return balance
}

func (f *usecaseFixture) eventTypes(t *testing.T) []entity.EventType {
	t.Helper()
	types := make([]entity.EventType, 0, len(f.gw.events))
	for _, event := range f.gw.events {
		types = append(types, event.Type)
	}
	return types
}

func TestCreateProperty(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()

	property := f.createProperty(t, 1000)
	expectedAddress, err := entity.PropertyAddress(f.program, property.Mint)
	require.NoError(t, err)
	assert.Equal(t, expectedAddress, property.Address)
	assert.True(t, property.IsActive)
	assert.Equal(t, uint64(0), property.CirculatingSupply)
	assert.Contains(t, f.eventTypes(t), entity.EventPropertyCreated)

	t.Run("duplicate mint", func(t *testing.T) {
		_, err := f.uc.CreateProperty(ctx, CreatePropertyParams{
			Authority:   f.authority,
			Mint:        property.Mint,
			Name:        "Same Mint Again",
			Symbol:      "DUP",
			TotalSupply: 10,
		})
		assert.ErrorIs(t, err, errs.Duplicate)
	})

	t.Run("invalid params", func(t *testing.T) {
		_, err := f.uc.CreateProperty(ctx, CreatePropertyParams{
			Authority:   f.authority,
			Mint:        solana.NewWallet().PublicKey(),
			Name:        "",
			Symbol:      "SYM",
			TotalSupply: 10,
		})
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestMint(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	holder := solana.NewWallet().PublicKey()
	f.grant(t, holder)

	updated, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 600)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), updated.CirculatingSupply)
	assert.Equal(t, uint64(600), f.balance(t, property, holder))
	assert.Contains(t, f.eventTypes(t), entity.EventTokensMinted)

	t.Run("supply cap exceeded", func(t *testing.T) {
		_, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 401)
		assert.ErrorIs(t, err, errs.SupplyExceeded)

		// The failed mint leaves supply and balances untouched.
		current, err := f.uc.GetProperty(ctx, property.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(600), current.CirculatingSupply)
		assert.Equal(t, uint64(600), f.balance(t, property, holder))
	})

	t.Run("mint up to cap", func(t *testing.T) {
		second := solana.NewWallet().PublicKey()
		f.grant(t, second)
		updated, err := f.uc.Mint(ctx, property.Address, f.authority, second, 400)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), updated.CirculatingSupply)
		assert.Equal(t, uint64(0), updated.RemainingSupply())

		_, err = f.uc.Mint(ctx, property.Address, f.authority, second, 1)
		assert.ErrorIs(t, err, errs.SupplyExceeded)
	})
}

func TestMintRejections(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	holder := solana.NewWallet().PublicKey()
	f.grant(t, holder)

	t.Run("zero amount", func(t *testing.T) {
		_, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("unauthorized caller", func(t *testing.T) {
		_, err := f.uc.Mint(ctx, property.Address, solana.NewWallet().PublicKey(), holder, 10)
		assert.ErrorIs(t, err, errs.Unauthorized)
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := f.uc.Mint(ctx, solana.NewWallet().PublicKey(), f.authority, holder, 10)
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("uncredentialed destination", func(t *testing.T) {
		stranger := solana.NewWallet().PublicKey()
		_, err := f.uc.Mint(ctx, property.Address, f.authority, stranger, 10)
		assert.ErrorIs(t, err, errs.ComplianceRequired)
		assert.Equal(t, compliance.DenyMissing, compliance.ReasonOf(err))

		current, err := f.uc.GetProperty(ctx, property.Address)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), current.CirculatingSupply)
		assert.Equal(t, uint64(0), f.balance(t, property, stranger))
	})

	t.Run("inactive property", func(t *testing.T) {
		_, err := f.uc.ToggleActive(ctx, property.Address, f.authority)
		require.NoError(t, err)
		_, err = f.uc.Mint(ctx, property.Address, f.authority, holder, 10)
		assert.ErrorIs(t, err, errs.PropertyNotActive)
	})
}

func TestBurn(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	holder := solana.NewWallet().PublicKey()
	f.grant(t, holder)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 600)
	require.NoError(t, err)

	updated, err := f.uc.Burn(ctx, property.Address, holder, 200)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), updated.CirculatingSupply)
	assert.Equal(t, uint64(400), f.balance(t, property, holder))
	assert.Contains(t, f.eventTypes(t), entity.EventTokensBurned)

	t.Run("burned supply is mintable again", func(t *testing.T) {
		updated, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 600)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), updated.CirculatingSupply)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := f.uc.Burn(ctx, property.Address, holder, 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("exceeds circulating supply", func(t *testing.T) {
		_, err := f.uc.Burn(ctx, property.Address, holder, 1001)
		assert.ErrorIs(t, err, errs.InsufficientSupply)
	})
}

func TestBurnInsufficientHolderBalance(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	f.grant(t, bob)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 600)
	require.NoError(t, err)
	_, err = f.uc.Mint(ctx, property.Address, f.authority, bob, 400)
	require.NoError(t, err)

	// 700 is under circulating supply but over alice's balance.
	_, err = f.uc.Burn(ctx, property.Address, alice, 700)
	assert.ErrorIs(t, err, errs.InsufficientBalance)

	current, err := f.uc.GetProperty(ctx, property.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), current.CirculatingSupply)
	assert.Equal(t, uint64(600), f.balance(t, property, alice))
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	f.grant(t, bob)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 600)
	require.NoError(t, err)

	require.NoError(t, f.uc.Transfer(ctx, property.Address, alice, bob, 250))
	assert.Equal(t, uint64(350), f.balance(t, property, alice))
	assert.Equal(t, uint64(250), f.balance(t, property, bob))
	assert.Contains(t, f.eventTypes(t), entity.EventTokensTransferred)

	t.Run("insufficient source balance", func(t *testing.T) {
		err := f.uc.Transfer(ctx, property.Address, alice, bob, 351)
		assert.ErrorIs(t, err, errs.InsufficientBalance)
		assert.Equal(t, uint64(350), f.balance(t, property, alice))
		assert.Equal(t, uint64(250), f.balance(t, property, bob))
	})

	t.Run("zero amount", func(t *testing.T) {
		err := f.uc.Transfer(ctx, property.Address, alice, bob, 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("transfers survive an inactive property", func(t *testing.T) {
		_, err := f.uc.ToggleActive(ctx, property.Address, f.authority)
		require.NoError(t, err)
		require.NoError(t, f.uc.Transfer(ctx, property.Address, alice, bob, 50))
		assert.Equal(t, uint64(300), f.balance(t, property, alice))
		assert.Equal(t, uint64(300), f.balance(t, property, bob))
	})
}

func TestTransferAbortedByCompliance(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	stranger := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 600)
	require.NoError(t, err)

	err = f.uc.Transfer(ctx, property.Address, alice, stranger, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ComplianceRequired)
	assert.Equal(t, compliance.DenyMissing, compliance.ReasonOf(err))

	// The abort leaves both balances unchanged.
	assert.Equal(t, uint64(600), f.balance(t, property, alice))
	assert.Equal(t, uint64(0), f.balance(t, property, stranger))
	assert.NotContains(t, f.eventTypes(t), entity.EventTokensTransferred)
}

func TestUpdateDetails(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)

	details := property.Details
	details.RentalYieldBps = 750
	details.MetadataURI = "https://example.com/v2.json"
	updated, err := f.uc.UpdateDetails(ctx, property.Address, f.authority, details)
	require.NoError(t, err)
	assert.Equal(t, details, updated.Details)
	assert.Contains(t, f.eventTypes(t), entity.EventPropertyDetailsUpdated)

	t.Run("unauthorized caller", func(t *testing.T) {
		_, err := f.uc.UpdateDetails(ctx, property.Address, solana.NewWallet().PublicKey(), details)
		assert.ErrorIs(t, err, errs.Unauthorized)
	})

	t.Run("invalid details", func(t *testing.T) {
		bad := details
		bad.RentalYieldBps = entity.MaxRentalYieldBps + 1
		_, err := f.uc.UpdateDetails(ctx, property.Address, f.authority, bad)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestToggleActive(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)

	updated, err := f.uc.ToggleActive(ctx, property.Address, f.authority)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = f.uc.ToggleActive(ctx, property.Address, f.authority)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	_, err = f.uc.ToggleActive(ctx, property.Address, solana.NewWallet().PublicKey())
	assert.ErrorIs(t, err, errs.Unauthorized)
}

func TestInitializeTransferHookConfig(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)

	config, err := f.uc.InitializeTransferHookConfig(ctx, property.Address, f.authority)
	require.NoError(t, err)
	assert.Equal(t, property.Address, config.Property)
	assert.Equal(t, property.Mint, config.Mint)

	_, err = f.uc.InitializeTransferHookConfig(ctx, property.Address, f.authority)
	assert.ErrorIs(t, err, errs.Duplicate)

	_, err = f.uc.InitializeTransferHookConfig(ctx, property.Address, solana.NewWallet().PublicKey())
	assert.ErrorIs(t, err, errs.Unauthorized)
}

func TestDepositRevenue(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	holder := solana.NewWallet().PublicKey()
	f.grant(t, holder)

	t.Run("no holders", func(t *testing.T) {
		_, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 1, 1_000_000)
		assert.ErrorIs(t, err, errs.NoHolders)
	})

	_, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 800)
	require.NoError(t, err)
	require.NoError(t, f.gw.CreditFunding(ctx, f.authority, 2_000_000))

	epoch, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 1, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), epoch.EpochNumber)
	assert.Equal(t, uint64(1_000_000), epoch.TotalRevenue)
	assert.Equal(t, uint64(800), epoch.EligibleSupply)
	assert.True(t, epoch.IsFinalized)
	assert.Equal(t, uint64(1_000_000), f.funding(t, epoch.VaultAddress))
	assert.Equal(t, uint64(1_000_000), f.funding(t, f.authority))
	assert.Contains(t, f.eventTypes(t), entity.EventRevenueDeposited)

	t.Run("duplicate epoch number", func(t *testing.T) {
		_, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 1, 500)
		assert.ErrorIs(t, err, errs.Duplicate)
		assert.Equal(t, uint64(1_000_000), f.funding(t, f.authority))
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 2, 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("unauthorized caller", func(t *testing.T) {
		_, err := f.uc.DepositRevenue(ctx, property.Address, solana.NewWallet().PublicKey(), 2, 500)
		assert.ErrorIs(t, err, errs.Unauthorized)
	})

	t.Run("insufficient funding", func(t *testing.T) {
		_, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 2, 5_000_000)
		assert.ErrorIs(t, err, errs.InsufficientBalance)
	})

	t.Run("inactive property", func(t *testing.T) {
		_, err := f.uc.ToggleActive(ctx, property.Address, f.authority)
		require.NoError(t, err)
		_, err = f.uc.DepositRevenue(ctx, property.Address, f.authority, 2, 500)
		assert.ErrorIs(t, err, errs.PropertyNotActive)
	})
}

func TestClaimRevenue(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	f.grant(t, bob)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 600)
	require.NoError(t, err)
	_, err = f.uc.Mint(ctx, property.Address, f.authority, bob, 400)
	require.NoError(t, err)
	require.NoError(t, f.gw.CreditFunding(ctx, f.authority, 1_000_000))
	epoch, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 1, 1_000_000)
	require.NoError(t, err)

	aliceRecord, err := f.uc.ClaimRevenue(ctx, property.Address, 1, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(600_000), aliceRecord.AmountClaimed)
	assert.Equal(t, uint64(600_000), f.funding(t, alice))
	assert.Equal(t, uint64(400_000), f.funding(t, epoch.VaultAddress))
	assert.Contains(t, f.eventTypes(t), entity.EventRevenueClaimed)

	bobRecord, err := f.uc.ClaimRevenue(ctx, property.Address, 1, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(400_000), bobRecord.AmountClaimed)

	// All claims paid out never exceed the deposited revenue.
	assert.Equal(t, uint64(1_000_000), aliceRecord.AmountClaimed+bobRecord.AmountClaimed)
	assert.Equal(t, uint64(0), f.funding(t, epoch.VaultAddress))

	t.Run("second claim is rejected", func(t *testing.T) {
		_, err := f.uc.ClaimRevenue(ctx, property.Address, 1, alice)
		assert.ErrorIs(t, err, errs.Duplicate)
		assert.Equal(t, uint64(600_000), f.funding(t, alice))
	})

	t.Run("holder without tokens", func(t *testing.T) {
		_, err := f.uc.ClaimRevenue(ctx, property.Address, 1, solana.NewWallet().PublicKey())
		assert.ErrorIs(t, err, errs.InsufficientBalance)
	})

	t.Run("unknown epoch", func(t *testing.T) {
		_, err := f.uc.ClaimRevenue(ctx, property.Address, 99, alice)
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestClaimRevenueDust(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	f.grant(t, bob)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 600)
	require.NoError(t, err)
	_, err = f.uc.Mint(ctx, property.Address, f.authority, bob, 400)
	require.NoError(t, err)
	require.NoError(t, f.gw.CreditFunding(ctx, f.authority, 1))

	epoch, err := f.uc.DepositRevenue(ctx, property.Address, f.authority, 1, 1)
	require.NoError(t, err)

	// floor(600 * 1 / 1000) == 0: the share rounds to dust and stays in custody.
	_, err = f.uc.ClaimRevenue(ctx, property.Address, 1, alice)
	assert.ErrorIs(t, err, errs.ClaimTooSmall)
	assert.Equal(t, uint64(1), f.funding(t, epoch.VaultAddress))
}

func TestClaimRevenueUsesCurrentBalance(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	f.grant(t, bob)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 1000)
	require.NoError(t, err)
	require.NoError(t, f.gw.CreditFunding(ctx, f.authority, 1_000_000))
	_, err = f.uc.DepositRevenue(ctx, property.Address, f.authority, 1, 1_000_000)
	require.NoError(t, err)

	// The payout follows the balance at claim time, not at deposit time.
	require.NoError(t, f.uc.Transfer(ctx, property.Address, alice, bob, 250))
	record, err := f.uc.ClaimRevenue(ctx, property.Address, 1, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(750_000), record.AmountClaimed)
}

func TestGetHolders(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	f.grant(t, alice)
	f.grant(t, bob)
	_, err := f.uc.Mint(ctx, property.Address, f.authority, alice, 300)
	require.NoError(t, err)
	_, err = f.uc.Mint(ctx, property.Address, f.authority, bob, 700)
	require.NoError(t, err)

	got, holdings, err := f.uc.GetHolders(ctx, property.Address, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, property.Address, got.Address)
	require.Len(t, holdings, 2)
	assert.Equal(t, bob, holdings[0].Holder)
	assert.Equal(t, uint64(700), holdings[0].Amount)
	assert.Equal(t, alice, holdings[1].Holder)
}

func TestSyncCredentialAccount(t *testing.T) {
	t.Parallel()
	f := newUsecaseFixture(t)
	ctx := context.Background()
	property := f.createProperty(t, 1000)
	holder := solana.NewWallet().PublicKey()

	_, err := f.uc.Mint(ctx, property.Address, f.authority, holder, 10)
	assert.ErrorIs(t, err, errs.ComplianceRequired)

	address, err := attestation.CredentialAddress(f.issuerProgram, holder)
	require.NoError(t, err)
	require.NoError(t, f.uc.SyncCredentialAccount(ctx, attestation.Account{
		Address: address,
		Owner:   f.issuerProgram,
		Data: attestation.Encode(attestation.Credential{
			Subject:   holder,
			Issuer:    f.issuerProgram,
			Type:      attestation.TypeBrazilianCpf,
			Status:    attestation.StatusActive,
			IssuedAt:  time.Now().Add(-time.Hour).Truncate(time.Second).UTC(),
			ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second).UTC(),
		}),
	}))

	_, err = f.uc.Mint(ctx, property.Address, f.authority, holder, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), f.balance(t, property, holder))
}
