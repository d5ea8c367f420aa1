package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Token balances and funding balances use the same guarded-debit pattern:
// the debit UPDATE matches only rows whose balance covers the amount, so a
// conditional update with zero rows affected is an insufficient balance, and
// concurrent debits against the same row serialize on the row lock.

func (r *Repository) GetBalance(ctx context.Context, mint solana.PublicKey, holder solana.PublicKey) (uint64, error) {
	var balance pgtype.Numeric
	err := r.queryable().QueryRow(ctx, `SELECT balance FROM rwa_token_balances WHERE mint = $1 AND holder = $2`, mint.String(), holder.String()).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to get token balance")
	}
	value, err := uint64FromNumeric(balance)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse token balance")
	}
	return value, nil
}

func (r *Repository) GetHolders(ctx context.Context, mint solana.PublicKey, limit int32, offset int32) ([]entity.Holding, error) {
	rows, err := r.queryable().Query(ctx, `SELECT holder, balance FROM rwa_token_balances WHERE mint = $1 AND balance > 0 ORDER BY balance DESC, holder LIMIT $2 OFFSET $3`, mint.String(), limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query holders")
	}
	defer rows.Close()

	holdings := make([]entity.Holding, 0)
	for rows.Next() {
		var (
			holderStr string
			balance   pgtype.Numeric
		)
		if err := rows.Scan(&holderStr, &balance); err != nil {
			return nil, errors.Wrap(err, "failed to scan holder row")
		}
		holder, err := publicKeyFromString(holderStr)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		amount, err := uint64FromNumeric(balance)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse holder balance")
		}
		holdings = append(holdings, entity.Holding{Holder: holder, Amount: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate holder rows")
	}
	return holdings, nil
}

func (r *Repository) CreditBalance(ctx context.Context, mint solana.PublicKey, holder solana.PublicKey, amount uint64) error {
	value, err := numericFromUint64(amount)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = r.queryable().Exec(ctx, `
		INSERT INTO rwa_token_balances (mint, holder, balance) VALUES ($1, $2, $3)
		ON CONFLICT (mint, holder) DO UPDATE SET balance = rwa_token_balances.balance + EXCLUDED.balance`,
		mint.String(), holder.String(), value,
	)
	if err != nil {
		return errors.Wrap(err, "failed to credit token balance")
	}
	return nil
}

func (r *Repository) DebitBalance(ctx context.Context, mint solana.PublicKey, holder solana.PublicKey, amount uint64) error {
	value, err := numericFromUint64(amount)
	if err != nil {
		return errors.WithStack(err)
	}
	tag, err := r.queryable().Exec(ctx, `UPDATE rwa_token_balances SET balance = balance - $3 WHERE mint = $1 AND holder = $2 AND balance >= $3`,
		mint.String(), holder.String(), value)
	if err != nil {
		return errors.Wrap(err, "failed to debit token balance")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.InsufficientBalance)
	}
	return nil
}

func (r *Repository) GetFundingBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	var balance pgtype.Numeric
	err := r.queryable().QueryRow(ctx, `SELECT balance FROM rwa_funding_balances WHERE account = $1`, account.String()).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to get funding balance")
	}
	value, err := uint64FromNumeric(balance)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse funding balance")
	}
	return value, nil
}

func (r *Repository) CreditFunding(ctx context.Context, account solana.PublicKey, amount uint64) error {
	value, err := numericFromUint64(amount)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = r.queryable().Exec(ctx, `
		INSERT INTO rwa_funding_balances (account, balance) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET balance = rwa_funding_balances.balance + EXCLUDED.balance`,
		account.String(), value,
	)
	if err != nil {
		return errors.Wrap(err, "failed to credit funding balance")
	}
	return nil
}

func (r *Repository) DebitFunding(ctx context.Context, account solana.PublicKey, amount uint64) error {
	value, err := numericFromUint64(amount)
	if err != nil {
		return errors.WithStack(err)
	}
	tag, err := r.queryable().Exec(ctx, `UPDATE rwa_funding_balances SET balance = balance - $2 WHERE account = $1 AND balance >= $2`,
		account.String(), value)
	if err != nil {
		return errors.Wrap(err, "failed to debit funding balance")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.InsufficientBalance)
	}
	return nil
}
