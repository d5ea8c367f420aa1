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

// ClaimRevenue pays the holder's proportional share of an epoch. The payout
// formula uses the holder's current balance, not a balance snapshot from
// deposit time. Inserting the claim record is the at-most-once gate: a second
// claim for the same (epoch, holder) fails with Duplicate no matter how the
// balance changed in between.
func (u *Usecase) ClaimRevenue(ctx context.Context, propertyAddress solana.PublicKey, epochNumber uint64, holder solana.PublicKey) (entity.ClaimRecord, error) {
	tx, err := u.rwaDg.BeginRwaTx(ctx)
	if err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to begin transaction")
	}
	defer rollback(ctx, tx)

	epoch, err := tx.GetRevenueEpoch(ctx, propertyAddress, epochNumber)
	if err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to get revenue epoch")
	}
	property, err := tx.GetPropertyByAddress(ctx, propertyAddress)
	if err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to get property")
	}

	balance, err := tx.GetBalance(ctx, property.Mint, holder)
	if err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to get holder balance")
	}
	if balance == 0 {
		return entity.ClaimRecord{}, errors.Wrap(errs.InsufficientBalance, "holder has no tokens")
	}

	claim, err := epoch.ClaimAmount(balance)
	if err != nil {
		return entity.ClaimRecord{}, errors.WithStack(err)
	}
	if claim == 0 {
		return entity.ClaimRecord{}, errors.Wrap(errs.ClaimTooSmall, "claim amount rounds to zero")
	}

	vaultBalance, err := tx.GetFundingBalance(ctx, epoch.VaultAddress)
	if err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to get vault balance")
	}
	if vaultBalance < claim {
		return entity.ClaimRecord{}, errors.Wrapf(errs.InsufficientVaultBalance, "vault balance is %d, claim is %d", vaultBalance, claim)
	}

	record := entity.ClaimRecord{
		Epoch:         epoch.Address,
		Holder:        holder,
		AmountClaimed: claim,
		ClaimedAt:     u.now(),
	}
	if err := tx.CreateClaimRecord(ctx, record); err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to create claim record")
	}
	if err := tx.DebitFunding(ctx, epoch.VaultAddress, claim); err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to debit custody vault")
	}
	if err := tx.CreditFunding(ctx, holder, claim); err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to credit holder funding")
	}
	event := entity.Event{
		Type:          entity.EventRevenueClaimed,
		Property:      propertyAddress,
		Subject:       holder,
		Amount:        claim,
		EpochNumber:   epochNumber,
		HolderBalance: balance,
		Timestamp:     record.ClaimedAt,
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Revenue claimed",
		slogx.Stringer("property", propertyAddress),
		slog.Uint64("epoch_number", epochNumber),
		slogx.Stringer("holder", holder),
		slog.Uint64("amount", claim),
		slog.Uint64("holder_balance", balance),
	)
	return record, nil
}
