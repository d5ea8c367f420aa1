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

// Burn redeems amount of the holder's tokens and shrinks circulating supply.
// Redemption is not acquisition, so there is no compliance re-check here.
func (u *Usecase) Burn(ctx context.Context, propertyAddress, holder solana.PublicKey, amount uint64) (entity.Property, error) {
	if amount == 0 {
		return entity.Property{}, errors.Wrap(errs.InvalidArgument, "burn amount must be positive")
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
	if amount > property.CirculatingSupply {
		return entity.Property{}, errors.Wrapf(errs.InsufficientSupply, "circulating supply is %d", property.CirculatingSupply)
	}

	if err := tx.DebitBalance(ctx, property.Mint, holder, amount); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to debit balance")
	}
	property.CirculatingSupply -= amount
	property.UpdatedAt = u.now()
	if err := tx.UpdatePropertySupply(ctx, propertyAddress, property.CirculatingSupply, property.UpdatedAt); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to update property supply")
	}
	event := entity.Event{
		Type:              entity.EventTokensBurned,
		Property:          propertyAddress,
		Subject:           holder,
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

	logger.InfoContext(ctx, "Tokens burned",
		slogx.Stringer("property", propertyAddress),
		slogx.Stringer("holder", holder),
		slog.Uint64("amount", amount),
		slog.Uint64("circulating_supply", property.CirculatingSupply),
	)
	return property, nil
}
