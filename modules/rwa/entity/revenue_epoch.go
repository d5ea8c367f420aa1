package entity

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/gaze-network/uint128"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

// RevenueEpoch is one funded distribution period. Immutable after creation:
// the deposit is single-shot and the epoch finalizes immediately.
type RevenueEpoch struct {
	// Address is the deterministic record address for this epoch.
	Address  solana.PublicKey
	Property solana.PublicKey
	// EpochNumber is assigned monotonically per property.
	EpochNumber uint64
	// TotalRevenue is the funding amount, fixed at creation.
	TotalRevenue uint64
	// EligibleSupply is the circulating supply snapshot at deposit time.
	// Always > 0: deposits are rejected while no holders exist.
	EligibleSupply uint64
	// VaultAddress is the epoch-scoped custody account claims are paid from.
	VaultAddress solana.PublicKey
	DepositedBy  solana.PublicKey
	DepositedAt  time.Time
	IsFinalized  bool
}

// ClaimAmount computes a holder's proportional share of the epoch revenue,
// floor(balance * TotalRevenue / EligibleSupply), widened to 128-bit to avoid
// intermediate overflow. The residual dust stays in custody.
func (e RevenueEpoch) ClaimAmount(balance uint64) (uint64, error) {
	if e.EligibleSupply == 0 {
		return 0, errors.WithStack(errs.NoHolders)
	}
	product, overflow := uint128.From64(balance).MulOverflow(uint128.From64(e.TotalRevenue))
	if overflow {
		return 0, errors.WithStack(errs.OverflowUint64)
	}
	share := product.Div64(e.EligibleSupply)
	if !share.IsUint64() {
		return 0, errors.WithStack(errs.OverflowUint64)
	}
	return share.Uint64(), nil
}
