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

// UpdateDetails replaces the property's free-text metadata. Authority-gated
// field writer, no other invariants.
func (u *Usecase) UpdateDetails(ctx context.Context, propertyAddress, caller solana.PublicKey, details entity.PropertyDetails) (entity.Property, error) {
	if err := details.Validate(); err != nil {
		return entity.Property{}, errors.WithStack(err)
	}

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

	property.Details = details
	property.UpdatedAt = u.now()
	if err := tx.UpdatePropertyDetails(ctx, propertyAddress, details, property.UpdatedAt); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to update property details")
	}
	event := entity.Event{
		Type:      entity.EventPropertyDetailsUpdated,
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

	logger.InfoContext(ctx, "Property details updated", slogx.Stringer("property", propertyAddress))
	return property, nil
}
