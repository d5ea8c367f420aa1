package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const propertyColumns = `address, authority, mint, name, symbol, total_supply, circulating_supply, property_address, property_type, total_value_usd, rental_yield_bps, metadata_uri, is_active, created_at, updated_at`

type scannable interface {
	Scan(dest ...any) error
}

func scanProperty(row scannable) (entity.Property, error) {
	var (
		addressStr, authorityStr, mintStr       string
		name, symbol                            string
		totalSupply, circulatingSupply          pgtype.Numeric
		propertyAddress, propertyType           string
		totalValueUsd                           pgtype.Numeric
		rentalYieldBps                          int16
		metadataURI                             string
		isActive                                bool
		createdAt, updatedAt                    time.Time
	)
	err := row.Scan(&addressStr, &authorityStr, &mintStr, &name, &symbol, &totalSupply, &circulatingSupply, &propertyAddress, &propertyType, &totalValueUsd, &rentalYieldBps, &metadataURI, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Property{}, errors.WithStack(errs.NotFound)
		}
		return entity.Property{}, errors.Wrap(err, "failed to scan property row")
	}
	address, err := publicKeyFromString(addressStr)
	if err != nil {
		return entity.Property{}, errors.WithStack(err)
	}
	authority, err := publicKeyFromString(authorityStr)
	if err != nil {
		return entity.Property{}, errors.WithStack(err)
	}
	mint, err := publicKeyFromString(mintStr)
	if err != nil {
		return entity.Property{}, errors.WithStack(err)
	}
	totalSupplyValue, err := uint64FromNumeric(totalSupply)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to parse total supply")
	}
	circulatingSupplyValue, err := uint64FromNumeric(circulatingSupply)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to parse circulating supply")
	}
	totalValueUsdValue, err := uint64FromNumeric(totalValueUsd)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to parse total value usd")
	}
	return entity.Property{
		Address:           address,
		Authority:         authority,
		Mint:              mint,
		Name:              name,
		Symbol:            symbol,
		TotalSupply:       totalSupplyValue,
		CirculatingSupply: circulatingSupplyValue,
		Details: entity.PropertyDetails{
			PropertyAddress: propertyAddress,
			PropertyType:    propertyType,
			TotalValueUsd:   totalValueUsdValue,
			RentalYieldBps:  uint16(rentalYieldBps),
			MetadataURI:     metadataURI,
		},
		IsActive:  isActive,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	}, nil
}

func (r *Repository) GetPropertyByAddress(ctx context.Context, address solana.PublicKey) (entity.Property, error) {
	row := r.queryable().QueryRow(ctx, `SELECT `+propertyColumns+` FROM rwa_properties WHERE address = $1`, address.String())
	return scanProperty(row)
}

func (r *Repository) GetPropertyByAddressForUpdate(ctx context.Context, address solana.PublicKey) (entity.Property, error) {
	row := r.queryable().QueryRow(ctx, `SELECT `+propertyColumns+` FROM rwa_properties WHERE address = $1 FOR UPDATE`, address.String())
	return scanProperty(row)
}

func (r *Repository) GetProperties(ctx context.Context, limit int32, offset int32) ([]entity.Property, error) {
	rows, err := r.queryable().Query(ctx, `SELECT `+propertyColumns+` FROM rwa_properties ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query properties")
	}
	defer rows.Close()

	properties := make([]entity.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate property rows")
	}
	return properties, nil
}

func (r *Repository) CreateProperty(ctx context.Context, property entity.Property) error {
	totalSupply, err := numericFromUint64(property.TotalSupply)
	if err != nil {
		return errors.WithStack(err)
	}
	circulatingSupply, err := numericFromUint64(property.CirculatingSupply)
	if err != nil {
		return errors.WithStack(err)
	}
	totalValueUsd, err := numericFromUint64(property.Details.TotalValueUsd)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = r.queryable().Exec(ctx, `
		INSERT INTO rwa_properties (address, authority, mint, name, symbol, total_supply, circulating_supply, property_address, property_type, total_value_usd, rental_yield_bps, metadata_uri, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		property.Address.String(), property.Authority.String(), property.Mint.String(), property.Name, property.Symbol,
		totalSupply, circulatingSupply,
		property.Details.PropertyAddress, property.Details.PropertyType, totalValueUsd, int16(property.Details.RentalYieldBps), property.Details.MetadataURI,
		property.IsActive, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return wrapInsertError(err, "failed to insert property")
	}
	return nil
}

func (r *Repository) UpdatePropertySupply(ctx context.Context, address solana.PublicKey, circulatingSupply uint64, updatedAt time.Time) error {
	supply, err := numericFromUint64(circulatingSupply)
	if err != nil {
		return errors.WithStack(err)
	}
	tag, err := r.queryable().Exec(ctx, `UPDATE rwa_properties SET circulating_supply = $2, updated_at = $3 WHERE address = $1`, address.String(), supply, updatedAt)
	if err != nil {
		return errors.Wrap(err, "failed to update property supply")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) UpdatePropertyDetails(ctx context.Context, address solana.PublicKey, details entity.PropertyDetails, updatedAt time.Time) error {
	totalValueUsd, err := numericFromUint64(details.TotalValueUsd)
	if err != nil {
		return errors.WithStack(err)
	}
	tag, err := r.queryable().Exec(ctx, `
		UPDATE rwa_properties SET property_address = $2, property_type = $3, total_value_usd = $4, rental_yield_bps = $5, metadata_uri = $6, updated_at = $7
		WHERE address = $1`,
		address.String(), details.PropertyAddress, details.PropertyType, totalValueUsd, int16(details.RentalYieldBps), details.MetadataURI, updatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update property details")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) UpdatePropertyActive(ctx context.Context, address solana.PublicKey, isActive bool, updatedAt time.Time) error {
	tag, err := r.queryable().Exec(ctx, `UPDATE rwa_properties SET is_active = $2, updated_at = $3 WHERE address = $1`, address.String(), isActive, updatedAt)
	if err != nil {
		return errors.Wrap(err, "failed to update property status")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) GetTransferHookConfig(ctx context.Context, property solana.PublicKey) (entity.TransferHookConfig, error) {
	var (
		propertyStr, mintStr, authorityStr string
		createdAt                          time.Time
	)
	err := r.queryable().QueryRow(ctx, `SELECT property, mint, authority, created_at FROM rwa_transfer_hook_configs WHERE property = $1`, property.String()).
		Scan(&propertyStr, &mintStr, &authorityStr, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.TransferHookConfig{}, errors.WithStack(errs.NotFound)
		}
		return entity.TransferHookConfig{}, errors.Wrap(err, "failed to get transfer hook config")
	}
	propertyKey, err := publicKeyFromString(propertyStr)
	if err != nil {
		return entity.TransferHookConfig{}, errors.WithStack(err)
	}
	mint, err := publicKeyFromString(mintStr)
	if err != nil {
		return entity.TransferHookConfig{}, errors.WithStack(err)
	}
	authority, err := publicKeyFromString(authorityStr)
	if err != nil {
		return entity.TransferHookConfig{}, errors.WithStack(err)
	}
	return entity.TransferHookConfig{
		Property:  propertyKey,
		Mint:      mint,
		Authority: authority,
		CreatedAt: createdAt.UTC(),
	}, nil
}

func (r *Repository) CreateTransferHookConfig(ctx context.Context, config entity.TransferHookConfig) error {
	_, err := r.queryable().Exec(ctx, `INSERT INTO rwa_transfer_hook_configs (property, mint, authority, created_at) VALUES ($1, $2, $3, $4)`,
		config.Property.String(), config.Mint.String(), config.Authority.String(), config.CreatedAt)
	if err != nil {
		return wrapInsertError(err, "failed to insert transfer hook config")
	}
	return nil
}

const revenueEpochColumns = `address, property, epoch_number, total_revenue, eligible_supply, vault_address, deposited_by, deposited_at, is_finalized`

func scanRevenueEpoch(row scannable) (entity.RevenueEpoch, error) {
	var (
		addressStr, propertyStr       string
		epochNumber                   int64
		totalRevenue, eligibleSupply  pgtype.Numeric
		vaultAddressStr, depositedBy  string
		depositedAt                   time.Time
		isFinalized                   bool
	)
	err := row.Scan(&addressStr, &propertyStr, &epochNumber, &totalRevenue, &eligibleSupply, &vaultAddressStr, &depositedBy, &depositedAt, &isFinalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RevenueEpoch{}, errors.WithStack(errs.NotFound)
		}
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to scan revenue epoch row")
	}
	address, err := publicKeyFromString(addressStr)
	if err != nil {
		return entity.RevenueEpoch{}, errors.WithStack(err)
	}
	property, err := publicKeyFromString(propertyStr)
	if err != nil {
		return entity.RevenueEpoch{}, errors.WithStack(err)
	}
	vaultAddress, err := publicKeyFromString(vaultAddressStr)
	if err != nil {
		return entity.RevenueEpoch{}, errors.WithStack(err)
	}
	depositedByKey, err := publicKeyFromString(depositedBy)
	if err != nil {
		return entity.RevenueEpoch{}, errors.WithStack(err)
	}
	totalRevenueValue, err := uint64FromNumeric(totalRevenue)
	if err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to parse total revenue")
	}
	eligibleSupplyValue, err := uint64FromNumeric(eligibleSupply)
	if err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to parse eligible supply")
	}
	return entity.RevenueEpoch{
		Address:        address,
		Property:       property,
		EpochNumber:    uint64(epochNumber),
		TotalRevenue:   totalRevenueValue,
		EligibleSupply: eligibleSupplyValue,
		VaultAddress:   vaultAddress,
		DepositedBy:    depositedByKey,
		DepositedAt:    depositedAt.UTC(),
		IsFinalized:    isFinalized,
	}, nil
}

func (r *Repository) GetRevenueEpoch(ctx context.Context, property solana.PublicKey, epochNumber uint64) (entity.RevenueEpoch, error) {
	row := r.queryable().QueryRow(ctx, `SELECT `+revenueEpochColumns+` FROM rwa_revenue_epochs WHERE property = $1 AND epoch_number = $2`, property.String(), int64(epochNumber))
	return scanRevenueEpoch(row)
}

func (r *Repository) GetRevenueEpochs(ctx context.Context, property solana.PublicKey) ([]entity.RevenueEpoch, error) {
	rows, err := r.queryable().Query(ctx, `SELECT `+revenueEpochColumns+` FROM rwa_revenue_epochs WHERE property = $1 ORDER BY epoch_number`, property.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to query revenue epochs")
	}
	defer rows.Close()

	epochs := make([]entity.RevenueEpoch, 0)
	for rows.Next() {
		epoch, err := scanRevenueEpoch(rows)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		epochs = append(epochs, epoch)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate revenue epoch rows")
	}
	return epochs, nil
}

func (r *Repository) CreateRevenueEpoch(ctx context.Context, epoch entity.RevenueEpoch) error {
	totalRevenue, err := numericFromUint64(epoch.TotalRevenue)
	if err != nil {
		return errors.WithStack(err)
	}
	eligibleSupply, err := numericFromUint64(epoch.EligibleSupply)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = r.queryable().Exec(ctx, `
		INSERT INTO rwa_revenue_epochs (address, property, epoch_number, total_revenue, eligible_supply, vault_address, deposited_by, deposited_at, is_finalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		epoch.Address.String(), epoch.Property.String(), int64(epoch.EpochNumber), totalRevenue, eligibleSupply,
		epoch.VaultAddress.String(), epoch.DepositedBy.String(), epoch.DepositedAt, epoch.IsFinalized,
	)
	if err != nil {
		return wrapInsertError(err, "failed to insert revenue epoch")
	}
	return nil
}

func (r *Repository) GetClaimRecords(ctx context.Context, epoch solana.PublicKey) ([]entity.ClaimRecord, error) {
	rows, err := r.queryable().Query(ctx, `SELECT epoch, holder, amount_claimed, claimed_at FROM rwa_claim_records WHERE epoch = $1 ORDER BY claimed_at`, epoch.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to query claim records")
	}
	defer rows.Close()

	records := make([]entity.ClaimRecord, 0)
	for rows.Next() {
		var (
			epochStr, holderStr string
			amountClaimed       pgtype.Numeric
			claimedAt           time.Time
		)
		if err := rows.Scan(&epochStr, &holderStr, &amountClaimed, &claimedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan claim record row")
		}
		epochKey, err := publicKeyFromString(epochStr)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		holder, err := publicKeyFromString(holderStr)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		amount, err := uint64FromNumeric(amountClaimed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse claimed amount")
		}
		records = append(records, entity.ClaimRecord{
			Epoch:         epochKey,
			Holder:        holder,
			AmountClaimed: amount,
			ClaimedAt:     claimedAt.UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate claim record rows")
	}
	return records, nil
}

func (r *Repository) CreateClaimRecord(ctx context.Context, record entity.ClaimRecord) error {
	amountClaimed, err := numericFromUint64(record.AmountClaimed)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = r.queryable().Exec(ctx, `INSERT INTO rwa_claim_records (epoch, holder, amount_claimed, claimed_at) VALUES ($1, $2, $3, $4)`,
		record.Epoch.String(), record.Holder.String(), amountClaimed, record.ClaimedAt)
	if err != nil {
		return wrapInsertError(err, "failed to insert claim record")
	}
	return nil
}

func (r *Repository) GetCredentialAccount(ctx context.Context, address solana.PublicKey) (attestation.Account, error) {
	var (
		ownerStr string
		data     []byte
	)
	err := r.queryable().QueryRow(ctx, `SELECT owner, data FROM rwa_credential_accounts WHERE address = $1`, address.String()).Scan(&ownerStr, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attestation.Account{}, errors.WithStack(errs.NotFound)
		}
		return attestation.Account{}, errors.Wrap(err, "failed to get credential account")
	}
	owner, err := publicKeyFromString(ownerStr)
	if err != nil {
		return attestation.Account{}, errors.WithStack(err)
	}
	return attestation.Account{
		Address: address,
		Owner:   owner,
		Data:    data,
	}, nil
}

func (r *Repository) UpsertCredentialAccount(ctx context.Context, account attestation.Account) error {
	_, err := r.queryable().Exec(ctx, `
		INSERT INTO rwa_credential_accounts (address, owner, data, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (address) DO UPDATE SET owner = EXCLUDED.owner, data = EXCLUDED.data, updated_at = now()`,
		account.Address.String(), account.Owner.String(), account.Data,
	)
	if err != nil {
		return errors.Wrap(err, "failed to upsert credential account")
	}
	return nil
}

func (r *Repository) RecordEvent(ctx context.Context, event entity.Event) error {
	amount, err := numericFromUint64(event.Amount)
	if err != nil {
		return errors.WithStack(err)
	}
	circulatingSupply, err := numericFromUint64(event.CirculatingSupply)
	if err != nil {
		return errors.WithStack(err)
	}
	holderBalance, err := numericFromUint64(event.HolderBalance)
	if err != nil {
		return errors.WithStack(err)
	}
	timestamp := event.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	_, err = r.queryable().Exec(ctx, `
		INSERT INTO rwa_events (type, property, subject, credential, credential_type, amount, circulating_supply, epoch_number, holder_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(event.Type), event.Property.String(), event.Subject.String(), event.Credential.String(), event.CredentialType,
		amount, circulatingSupply, int64(event.EpochNumber), holderBalance, timestamp,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert event")
	}
	return nil
}
