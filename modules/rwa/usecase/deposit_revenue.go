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

// DepositRevenue funds one distribution epoch. Eligible supply is snapshotted
// from circulating supply at deposit time and the funding amount moves from
// the authority into the epoch-scoped custody account. Single-shot: the epoch
// finalizes immediately, and a duplicate epoch number for the same property
// is rejected by the storage layer.
func (u *Usecase) DepositRevenue(ctx context.Context, propertyAddress, caller solana.PublicKey, epochNumber uint64, amount uint64) (entity.RevenueEpoch, error) {
	if amount == 0 {
		return entity.RevenueEpoch{}, errors.Wrap(errs.InvalidArgument, "deposit amount must be positive")
	}

	tx, err := u.rwaDg.BeginRwaTx(ctx)
	if err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to begin transaction")
	}
	defer rollback(ctx, tx)

	property, err := tx.GetPropertyByAddressForUpdate(ctx, propertyAddress)
	if err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to get property")
	}
	if !property.Authority.Equals(caller) {
		return entity.RevenueEpoch{}, errors.Wrap(errs.Unauthorized, "caller is not the property authority")
	}
	if !property.IsActive {
		return entity.RevenueEpoch{}, errors.Wrap(errs.PropertyNotActive, "property is not active")
	}
	if property.CirculatingSupply == 0 {
		logger.WarnContext(ctx, "Deposit rejected, no token holders", slogx.Stringer("property", propertyAddress))
		return entity.RevenueEpoch{}, errors.Wrap(errs.NoHolders, "cannot deposit revenue while circulating supply is zero")
	}

	epochAddress, err := entity.RevenueEpochAddress(u.program, propertyAddress, epochNumber)
	if err != nil {
		return entity.RevenueEpoch{}, errors.WithStack(err)
	}
	vaultAddress, err := entity.RevenueVaultAddress(u.program, propertyAddress, epochNumber)
	if err != nil {
		return entity.RevenueEpoch{}, errors.WithStack(err)
	}
	epoch := entity.RevenueEpoch{
		Address:        epochAddress,
		Property:       propertyAddress,
		EpochNumber:    epochNumber,
		TotalRevenue:   amount,
		EligibleSupply: property.CirculatingSupply,
		VaultAddress:   vaultAddress,
		DepositedBy:    caller,
		DepositedAt:    u.now(),
		IsFinalized:    true,
	}
	if err := tx.CreateRevenueEpoch(ctx, epoch); err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to create revenue epoch")
	}
	if err := tx.DebitFunding(ctx, caller, amount); err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to debit depositor funding")
	}
	if err := tx.CreditFunding(ctx, vaultAddress, amount); err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to credit custody vault")
	}
	event := entity.Event{
		Type:        entity.EventRevenueDeposited,
		Property:    propertyAddress,
		Subject:     caller,
		Amount:      amount,
		EpochNumber: epochNumber,
		Timestamp:   epoch.DepositedAt,
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.RevenueEpoch{}, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Revenue deposited",
		slogx.Stringer("property", propertyAddress),
		slog.Uint64("epoch_number", epochNumber),
		slog.Uint64("amount", amount),
		slog.Uint64("eligible_supply", epoch.EligibleSupply),
	)
	return epoch, nil
}
