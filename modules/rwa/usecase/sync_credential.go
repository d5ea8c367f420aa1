package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

// SyncCredentialAccount mirrors one raw issuer account into the module
// database, where the default attestation source reads from. The account data
// stays untrusted: the gate re-verifies ownership and content on every check.
func (u *Usecase) SyncCredentialAccount(ctx context.Context, account attestation.Account) error {
	if err := u.rwaDg.UpsertCredentialAccount(ctx, account); err != nil {
		return errors.Wrap(err, "failed to upsert credential account")
	}
	logger.InfoContext(ctx, "Credential account synced", slogx.Stringer("address", account.Address))
	return nil
}
