package postgres

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolationCode = "23505"

// wrapInsertError maps unique-constraint violations to errs.Duplicate. Unique
// constraints are the create-if-absent primitive: epoch and claim replay
// protection both rely on this mapping.
func wrapInsertError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errors.Wrap(errs.Duplicate, msg)
	}
	return errors.Wrap(err, msg)
}

func uint64FromNumeric(src pgtype.Numeric) (uint64, error) {
	if !src.Valid {
		return 0, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	result, err := strconv.ParseUint(string(bytes), 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return result, nil
}

func numericFromUint64(src uint64) (pgtype.Numeric, error) {
	var result pgtype.Numeric
	err := result.UnmarshalJSON([]byte(strconv.FormatUint(src, 10)))
	if err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func publicKeyFromString(src string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(src)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(err, "failed to parse public key %q", src)
	}
	return key, nil
}
