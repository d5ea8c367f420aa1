package attestation

import (
	"encoding/binary"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

// Credential account byte layout, as written by the issuer service:
// record tag (8) + subject (32) + issuer (32) + type (1) + status (1) +
// issued_at i64 LE (8) + expires_at i64 LE (8).
const (
	recordTagSize     = 8
	subjectOffset     = recordTagSize
	issuerOffset      = subjectOffset + solana.PublicKeyLength
	typeOffset        = issuerOffset + solana.PublicKeyLength
	statusOffset      = typeOffset + 1
	issuedAtOffset    = statusOffset + 1
	expiresAtOffset   = issuedAtOffset + 8
	MinCredentialSize = expiresAtOffset + 8
)

// Parse decodes a raw credential account buffer into a typed record. It fails
// if the buffer is shorter than the fixed layout or if the type or status
// byte does not map to a known variant. Pure function, no I/O.
func Parse(data []byte) (Credential, error) {
	if len(data) < MinCredentialSize {
		return Credential{}, errors.Wrapf(errs.InvalidArgument, "credential account data too short: %d bytes, need at least %d", len(data), MinCredentialSize)
	}
	credentialType, err := TypeFromByte(data[typeOffset])
	if err != nil {
		return Credential{}, errors.WithStack(err)
	}
	status, err := StatusFromByte(data[statusOffset])
	if err != nil {
		return Credential{}, errors.WithStack(err)
	}
	issuedAt := int64(binary.LittleEndian.Uint64(data[issuedAtOffset : issuedAtOffset+8]))
	expiresAt := int64(binary.LittleEndian.Uint64(data[expiresAtOffset : expiresAtOffset+8]))
	return Credential{
		Subject:   solana.PublicKeyFromBytes(data[subjectOffset : subjectOffset+solana.PublicKeyLength]),
		Issuer:    solana.PublicKeyFromBytes(data[issuerOffset : issuerOffset+solana.PublicKeyLength]),
		Type:      credentialType,
		Status:    status,
		IssuedAt:  time.Unix(issuedAt, 0).UTC(),
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}

// Encode serializes a credential into the issuer's byte layout. Used by the
// issuer mirror and in tests; the record tag is left zeroed.
func Encode(c Credential) []byte {
	data := make([]byte, MinCredentialSize)
	copy(data[subjectOffset:], c.Subject.Bytes())
	copy(data[issuerOffset:], c.Issuer.Bytes())
	data[typeOffset] = byte(c.Type)
	data[statusOffset] = byte(c.Status)
	binary.LittleEndian.PutUint64(data[issuedAtOffset:], uint64(c.IssuedAt.Unix()))
	binary.LittleEndian.PutUint64(data[expiresAtOffset:], uint64(c.ExpiresAt.Unix()))
	return data
}
