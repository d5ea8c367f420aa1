package compliance

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

// DenialReason classifies why the gate denied a subject.
type DenialReason string

const (
	// DenyMissing means no credential account exists for the subject.
	DenyMissing DenialReason = "missing"
	// DenyUntrustedSource means the credential account is not owned by the
	// trusted issuer service.
	DenyUntrustedSource DenialReason = "untrusted_source"
	// DenyMalformed means the credential account data failed to parse.
	DenyMalformed DenialReason = "malformed"
	// DenySubjectMismatch means the credential belongs to another subject.
	DenySubjectMismatch DenialReason = "subject_mismatch"
	// DenyRevoked, DenySuspended and DenyExpiredStatus mirror the stored
	// credential status.
	DenyRevoked       DenialReason = "revoked"
	DenySuspended     DenialReason = "suspended"
	DenyExpiredStatus DenialReason = "expired_status"
	// DenyTimeExpired means expires_at has passed, regardless of the stored
	// status.
	DenyTimeExpired DenialReason = "time_expired"
)

// DenialError is a gate denial. errors.Is(err, errs.ComplianceRequired)
// matches any denial; errors.As extracts the reason.
type DenialError struct {
	Reason DenialReason
	cause  error
}

// Deny constructs a denial with the given reason. cause may be nil.
func Deny(reason DenialReason, cause error) error {
	return withstack.WithStackDepth(&DenialError{Reason: reason, cause: cause}, 1)
}

func (e *DenialError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("compliance denied (%s): %s", e.Reason, e.cause)
	}
	return fmt.Sprintf("compliance denied (%s)", e.Reason)
}

func (e *DenialError) Is(target error) bool {
	if target == error(errs.ComplianceRequired) {
		return true
	}
	other, ok := target.(*DenialError)
	return ok && other.Reason == e.Reason
}

func (e *DenialError) Unwrap() error {
	return e.cause
}

// ReasonOf extracts the denial reason from an error chain, or "" if the error
// is not a gate denial.
func ReasonOf(err error) DenialReason {
	var denial *DenialError
	if errors.As(err, &denial) {
		return denial.Reason
	}
	return ""
}
