package usecase

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

// ToggleActive flips the property's issuance flag and returns the new state.
func (u *Usecase) ToggleActive(ctx context.Context, propertyAddress, caller solana.PublicKey) (entity.Property, error) {
	tx, err := u.rwaDg.BeginRwaTx(ctx)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to begin transaction")
	}
	defer rollback(ctx, tx)

	property, err := tx.GetPropertyByAddressForUpdate(ctx, propertyAddress)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to get property")
	}
	if !property.Authority.Equals(caller) {
		return entity.Property{}, errors.Wrap(errs.Unauthorized, "caller is not the property authority")
	}

	property.IsActive = !property.IsActive
	property.UpdatedAt = u.now()
	if err := tx.UpdatePropertyActive(ctx, propertyAddress, property.IsActive, property.UpdatedAt); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to update property status")
	}
	event := entity.Event{
		Type:      entity.EventPropertyStatusToggled,
		Property:  propertyAddress,
		Subject:   caller,
		Timestamp: property.UpdatedAt,
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Property status toggled",
		slogx.Stringer("property", propertyAddress),
		slog.Bool("is_active", property.IsActive),
	)
	return property, nil
}
