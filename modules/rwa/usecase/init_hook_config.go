package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

// InitializeTransferHookConfig registers the property mint with the transfer
// interceptor. One-time per property; a second call fails with Duplicate.
func (u *Usecase) InitializeTransferHookConfig(ctx context.Context, propertyAddress, caller solana.PublicKey) (entity.TransferHookConfig, error) {
	tx, err := u.rwaDg.BeginRwaTx(ctx)
	if err != nil {
		return entity.TransferHookConfig{}, errors.Wrap(err, "failed to begin transaction")
	}
	defer rollback(ctx, tx)

	property, err := tx.GetPropertyByAddress(ctx, propertyAddress)
	if err != nil {
		return entity.TransferHookConfig{}, errors.Wrap(err, "failed to get property")
	}
	if !property.Authority.Equals(caller) {
		return entity.TransferHookConfig{}, errors.Wrap(errs.Unauthorized, "caller is not the property authority")
	}

	config := entity.TransferHookConfig{
		Property:  propertyAddress,
		Mint:      property.Mint,
		Authority: caller,
		CreatedAt: u.now(),
	}
	if err := tx.CreateTransferHookConfig(ctx, config); err != nil {
		return entity.TransferHookConfig{}, errors.Wrap(err, "failed to create transfer hook config")
	}
	event := entity.Event{
		Type:      entity.EventTransferHookInitialized,
		Property:  propertyAddress,
		Subject:   caller,
		Timestamp: config.CreatedAt,
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return entity.TransferHookConfig{}, errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.TransferHookConfig{}, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Transfer hook config initialized", slogx.Stringer("property", propertyAddress))
	return config, nil
}
