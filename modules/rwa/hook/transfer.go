// Package hook implements the pre-transfer interceptor the asset ledger
// invokes before finalizing any balance-changing transfer. It is the only
// enforcement point for secondary-market transfers; minting enforces
// compliance independently.
package hook

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/modules/rwa/compliance"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

type Interceptor struct {
	gate  *compliance.Gate
	audit compliance.AuditSink
}

func NewInterceptor(gate *compliance.Gate, audit compliance.AuditSink) *Interceptor {
	return &Interceptor{
		gate:  gate,
		audit: audit,
	}
}

// OnTransfer verifies the receiving party of a transfer. destinationAccount
// is the raw byte storage of the destination token account; no higher-level
// decode is available at this boundary, so the owner is extracted at its
// fixed offset with bounds checks. Any error aborts the entire transfer.
func (i *Interceptor) OnTransfer(ctx context.Context, source solana.PublicKey, destinationAccount []byte, amount uint64) error {
	owner, err := entity.DecodeTokenAccountOwner(destinationAccount)
	if err != nil {
		logger.WarnContext(ctx, "Transfer aborted, malformed destination account",
			slogx.Stringer("source", source),
			slogx.Error(err),
		)
		return compliance.Deny(compliance.DenyMalformed, err)
	}

	credential, err := i.gate.Check(ctx, owner)
	if err != nil {
		return errors.WithStack(err)
	}

	if i.audit != nil {
		event := entity.Event{
			Type:           entity.EventTransferComplianceVerified,
			Subject:        owner,
			CredentialType: credential.Type.String(),
			Amount:         amount,
		}
		if err := i.audit.RecordEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record transfer audit event")
		}
	}
	logger.DebugContext(ctx, "Transfer compliance verified",
		slogx.Stringer("source", source),
		slogx.Stringer("destination_owner", owner),
		slog.Uint64("amount", amount),
	)
	return nil
}
