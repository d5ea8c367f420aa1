package postgres

import (
	"math"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64Numeric(t *testing.T) {
	test := func(value uint64) {
		t.Run(strconv.FormatUint(value, 10), func(t *testing.T) {
			t.Parallel()
			numeric, err := numericFromUint64(value)
			require.NoError(t, err)
			got, err := uint64FromNumeric(numeric)
			require.NoError(t, err)
			assert.Equal(t, value, got)
		})
	}

	test(0)
	test(1)
	test(1_000_000)
	test(math.MaxInt64)
	test(math.MaxUint64)
}

func TestUint64FromNumericInvalid(t *testing.T) {
	t.Parallel()
	got, err := uint64FromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}

func TestWrapInsertError(t *testing.T) {
	t.Parallel()
	err := wrapInsertError(&pgconn.PgError{Code: uniqueViolationCode}, "failed to insert")
	assert.ErrorIs(t, err, errs.Duplicate)

	err = wrapInsertError(&pgconn.PgError{Code: "23503"}, "failed to insert")
	assert.NotErrorIs(t, err, errs.Duplicate)

	err = wrapInsertError(errors.New("connection reset"), "failed to insert")
	assert.NotErrorIs(t, err, errs.Duplicate)
}

func TestPublicKeyFromString(t *testing.T) {
	t.Parallel()
	key := solana.NewWallet().PublicKey()
	got, err := publicKeyFromString(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = publicKeyFromString("not-a-key")
	assert.Error(t, err)
}
