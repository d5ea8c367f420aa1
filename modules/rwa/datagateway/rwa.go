package datagateway

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

type RwaDataGateway interface {
	RwaReaderDataGateway
	RwaWriterDataGateway
	BalanceReaderDataGateway
	BalanceWriterDataGateway

	// BeginRwaTx returns a new RwaDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginRwaTx(ctx context.Context) (RwaDataGatewayWithTx, error)
}

type RwaDataGatewayWithTx interface {
	RwaReaderDataGateway
	RwaWriterDataGateway
	BalanceReaderDataGateway
	BalanceWriterDataGateway
	Tx
}

type RwaReaderDataGateway interface {
	// GetPropertyByAddress returns the property record. Returns errs.NotFound if no property exists at the address.
	GetPropertyByAddress(ctx context.Context, address solana.PublicKey) (entity.Property, error)
	// GetPropertyByAddressForUpdate is GetPropertyByAddress with the record locked for the current transaction, so each accepted mutation observes the latest committed state.
	GetPropertyByAddressForUpdate(ctx context.Context, address solana.PublicKey) (entity.Property, error)
	GetProperties(ctx context.Context, limit int32, offset int32) ([]entity.Property, error)
	// GetTransferHookConfig returns errs.NotFound if the property's hook config was never initialized.
	GetTransferHookConfig(ctx context.Context, property solana.PublicKey) (entity.TransferHookConfig, error)
	// GetRevenueEpoch returns errs.NotFound if the epoch does not exist.
	GetRevenueEpoch(ctx context.Context, property solana.PublicKey, epochNumber uint64) (entity.RevenueEpoch, error)
	GetRevenueEpochs(ctx context.Context, property solana.PublicKey) ([]entity.RevenueEpoch, error)
	GetClaimRecords(ctx context.Context, epoch solana.PublicKey) ([]entity.ClaimRecord, error)
	// GetCredentialAccount reads a mirrored issuer account. Returns errs.NotFound if absent.
	GetCredentialAccount(ctx context.Context, address solana.PublicKey) (attestation.Account, error)
}

type RwaWriterDataGateway interface {
	// CreateProperty inserts a new property record. Returns errs.Duplicate if a record already exists at the address or for the mint.
	CreateProperty(ctx context.Context, property entity.Property) error
	UpdatePropertySupply(ctx context.Context, address solana.PublicKey, circulatingSupply uint64, updatedAt time.Time) error
	UpdatePropertyDetails(ctx context.Context, address solana.PublicKey, details entity.PropertyDetails, updatedAt time.Time) error
	UpdatePropertyActive(ctx context.Context, address solana.PublicKey, isActive bool, updatedAt time.Time) error
	// CreateTransferHookConfig returns errs.Duplicate if the property's hook config already exists.
	CreateTransferHookConfig(ctx context.Context, config entity.TransferHookConfig) error
	// CreateRevenueEpoch returns errs.Duplicate on a repeated (property, epoch number) pair.
	CreateRevenueEpoch(ctx context.Context, epoch entity.RevenueEpoch) error
	// CreateClaimRecord returns errs.Duplicate on a repeated (epoch, holder) pair. This is the sole double-claim defense.
	CreateClaimRecord(ctx context.Context, record entity.ClaimRecord) error
	// UpsertCredentialAccount mirrors an issuer account into the module database.
	UpsertCredentialAccount(ctx context.Context, account attestation.Account) error
	// RecordEvent appends an audit event. A zero Timestamp defaults to the insert time.
	RecordEvent(ctx context.Context, event entity.Event) error
}
