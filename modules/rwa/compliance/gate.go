package compliance

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

// AuditSink records audit events for off-band traceability. Rejected attempts
// are logged but not persisted; only successful verifications are recorded.
type AuditSink interface {
	RecordEvent(ctx context.Context, event entity.Event) error
}

// Gate decides whether an address may receive or hold the asset token. It is
// stateless between calls: compliance state is externally mutable, so every
// balance-affecting event verifies fresh, never against a cached decision.
type Gate struct {
	issuerProgram solana.PublicKey
	accounts      attestation.AccountSource
	audit         AuditSink
	now           func() time.Time
}

func NewGate(issuerProgram solana.PublicKey, accounts attestation.AccountSource, audit AuditSink) *Gate {
	return &Gate{
		issuerProgram: issuerProgram,
		accounts:      accounts,
		audit:         audit,
		now:           time.Now,
	}
}

// Check locates the subject's credential account and verifies it. Returns the
// parsed credential on success, or a DenialError classifying the failure.
func (g *Gate) Check(ctx context.Context, subject solana.PublicKey) (attestation.Credential, error) {
	address, err := attestation.CredentialAddress(g.issuerProgram, subject)
	if err != nil {
		return attestation.Credential{}, errors.WithStack(err)
	}
	account, err := g.accounts.GetAccount(ctx, address)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return attestation.Credential{}, g.deny(ctx, subject, DenyMissing, err)
		}
		return attestation.Credential{}, errors.Wrap(err, "failed to read credential account")
	}
	return g.CheckAccount(ctx, account, subject)
}

// CheckAccount verifies an already-fetched credential account against the
// subject. Checks run in a fixed order, each a distinct failure mode:
// issuer ownership, parse, subject match, stored status, time expiry.
func (g *Gate) CheckAccount(ctx context.Context, account attestation.Account, subject solana.PublicKey) (attestation.Credential, error) {
	if !account.Owner.Equals(g.issuerProgram) {
		return attestation.Credential{}, g.deny(ctx, subject, DenyUntrustedSource,
			errors.Errorf("credential account owned by %s, expected %s", account.Owner, g.issuerProgram))
	}

	credential, err := attestation.Parse(account.Data)
	if err != nil {
		return attestation.Credential{}, g.deny(ctx, subject, DenyMalformed, err)
	}

	if !credential.Subject.Equals(subject) {
		return attestation.Credential{}, g.deny(ctx, subject, DenySubjectMismatch,
			errors.Errorf("credential subject is %s", credential.Subject))
	}

	switch credential.Status {
	case attestation.StatusActive:
		// continue to time expiry
	case attestation.StatusRevoked:
		return attestation.Credential{}, g.deny(ctx, subject, DenyRevoked, nil)
	case attestation.StatusSuspended:
		return attestation.Credential{}, g.deny(ctx, subject, DenySuspended, nil)
	default:
		return attestation.Credential{}, g.deny(ctx, subject, DenyExpiredStatus, nil)
	}

	// Status and expiry are independent checks. An Active credential can
	// still be time-expired.
	now := g.now()
	if !now.Before(credential.ExpiresAt) {
		return attestation.Credential{}, g.deny(ctx, subject, DenyTimeExpired,
			errors.Errorf("credential expired at %s", credential.ExpiresAt))
	}

	if g.audit != nil {
		event := entity.Event{
			Type:           entity.EventCredentialVerified,
			Subject:        subject,
			Credential:     account.Address,
			CredentialType: credential.Type.String(),
			Timestamp:      now,
		}
		if err := g.audit.RecordEvent(ctx, event); err != nil {
			return attestation.Credential{}, errors.Wrap(err, "failed to record credential audit event")
		}
	}
	logger.DebugContext(ctx, "Credential verified",
		slogx.Stringer("subject", subject),
		slog.String("credential_type", credential.Type.String()),
	)
	return credential, nil
}

func (g *Gate) deny(ctx context.Context, subject solana.PublicKey, reason DenialReason, cause error) error {
	args := []any{
		slogx.Stringer("subject", subject),
		slog.String("reason", string(reason)),
	}
	if cause != nil {
		args = append(args, slogx.Error(cause))
	}
	logger.WarnContext(ctx, "Compliance check denied", args...)
	return Deny(reason, cause)
}
