package attestation

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

// Account is a raw issuer account: untrusted bytes plus the program that
// owns them.
type Account struct {
	Address solana.PublicKey
	// Owner is the program owning the account, checked against the trusted
	// issuer before any parse.
	Owner solana.PublicKey
	Data  []byte
}

// AccountSource reads raw credential accounts. Implemented by the issuer
// mirror in the module database and by a live RPC client.
type AccountSource interface {
	// GetAccount returns the account at address. Returns errs.NotFound if no
	// account exists there.
	GetAccount(ctx context.Context, address solana.PublicKey) (Account, error)
}

type rpcAccountSource struct {
	client *rpc.Client
}

// NewRPCAccountSource reads credential accounts live from a Solana RPC node.
func NewRPCAccountSource(endpoint string) AccountSource {
	return &rpcAccountSource{
		client: rpc.New(endpoint),
	}
}

func (s *rpcAccountSource) GetAccount(ctx context.Context, address solana.PublicKey) (Account, error) {
	result, err := s.client.GetAccountInfo(ctx, address)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return Account{}, errors.WithStack(errs.NotFound)
		}
		return Account{}, errors.Wrap(err, "failed to get account info")
	}
	if result == nil || result.Value == nil {
		return Account{}, errors.WithStack(errs.NotFound)
	}
	return Account{
		Address: address,
		Owner:   result.Value.Owner,
		Data:    result.Value.Data.GetBinary(),
	}, nil
}
