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

// Transfer moves tokens between holders. The interceptor runs against the
// destination's raw account bytes before any balance moves; a denial aborts
// the whole transfer, leaving both balances unchanged.
func (u *Usecase) Transfer(ctx context.Context, propertyAddress, source, destination solana.PublicKey, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errs.InvalidArgument, "transfer amount must be positive")
	}

	tx, err := u.rwaDg.BeginRwaTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer rollback(ctx, tx)

	property, err := tx.GetPropertyByAddress(ctx, propertyAddress)
	if err != nil {
		return errors.Wrap(err, "failed to get property")
	}

	destinationBalance, err := tx.GetBalance(ctx, property.Mint, destination)
	if err != nil {
		return errors.Wrap(err, "failed to get destination balance")
	}
	destinationAccount := entity.TokenAccount{
		Mint:   property.Mint,
		Owner:  destination,
		Amount: destinationBalance,
	}
	if err := u.interceptor.OnTransfer(ctx, source, destinationAccount.Encode(), amount); err != nil {
		return errors.WithStack(err)
	}

	if err := tx.DebitBalance(ctx, property.Mint, source, amount); err != nil {
		return errors.Wrap(err, "failed to debit source balance")
	}
	if err := tx.CreditBalance(ctx, property.Mint, destination, amount); err != nil {
		return errors.Wrap(err, "failed to credit destination balance")
	}
	event := entity.Event{
		Type:      entity.EventTokensTransferred,
		Property:  propertyAddress,
		Subject:   destination,
		Amount:    amount,
		Timestamp: u.now(),
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Tokens transferred",
		slogx.Stringer("property", propertyAddress),
		slogx.Stringer("source", source),
		slogx.Stringer("destination", destination),
		slog.Uint64("amount", amount),
	)
	return nil
}
