package httphandler

import (
	"testing"

	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		req := paginationRequest{}
		require.NoError(t, req.Validate())
		require.NoError(t, req.ParseDefault())
		assert.Equal(t, int32(defaultLimit), req.Limit)
		assert.Equal(t, int32(0), req.Offset)
	})

	t.Run("explicit limit kept", func(t *testing.T) {
		t.Parallel()
		req := paginationRequest{Limit: 25, Offset: 50}
		require.NoError(t, req.Validate())
		require.NoError(t, req.ParseDefault())
		assert.Equal(t, int32(25), req.Limit)
		assert.Equal(t, int32(50), req.Offset)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		t.Parallel()
		for _, req := range []paginationRequest{
			{Limit: -1},
			{Limit: maxLimit + 1},
			{Offset: -1},
		} {
			err := req.Validate()
			require.Error(t, err)
			var publicErr *errs.PublicError
			assert.ErrorAs(t, err, &publicErr)
		}
	})
}
