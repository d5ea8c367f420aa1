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

// Mint issues amount new tokens to destination. The property must be active,
// the issuance must fit under the supply cap, and the destination must pass
// the compliance gate. All checks and the balance credit commit atomically.
func (u *Usecase) Mint(ctx context.Context, propertyAddress, caller, destination solana.PublicKey, amount uint64) (entity.Property, error) {
	if amount == 0 {
		return entity.Property{}, errors.Wrap(errs.InvalidArgument, "mint amount must be positive")
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
	if !property.IsActive {
		return entity.Property{}, errors.Wrap(errs.PropertyNotActive, "minting is disabled for this property")
	}
	if amount > property.RemainingSupply() {
		logger.WarnContext(ctx, "Mint rejected, supply cap exceeded",
			slogx.Stringer("property", propertyAddress),
			slog.Uint64("amount", amount),
			slog.Uint64("remaining_supply", property.RemainingSupply()),
		)
		return entity.Property{}, errors.Wrapf(errs.SupplyExceeded, "remaining supply is %d", property.RemainingSupply())
	}

	// Fresh gate check on every issuance; mint is not a transfer from the
	// asset ledger's perspective, so the interceptor never sees it.
	if _, err := u.gate.Check(ctx, destination); err != nil {
		return entity.Property{}, errors.WithStack(err)
	}

	if err := tx.CreditBalance(ctx, property.Mint, destination, amount); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to credit balance")
	}
	property.CirculatingSupply += amount
	property.UpdatedAt = u.now()
	if err := tx.UpdatePropertySupply(ctx, propertyAddress, property.CirculatingSupply, property.UpdatedAt); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to update property supply")
	}
	event := entity.Event{
		Type:              entity.EventTokensMinted,
		Property:          propertyAddress,
		Subject:           destination,
		Amount:            amount,
		CirculatingSupply: property.CirculatingSupply,
		Timestamp:         property.UpdatedAt,
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Tokens minted",
		slogx.Stringer("property", propertyAddress),
		slogx.Stringer("destination", destination),
		slog.Uint64("amount", amount),
		slog.Uint64("circulating_supply", property.CirculatingSupply),
	)
	return property, nil
}
