package attestation

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

// Type enumerates the credential kinds the issuer service can attest to.
type Type uint8

const (
	TypeKycBasic Type = iota
	TypeKycFull
	TypeAccreditedInvestor
	TypeQualifiedPurchaser
	TypeBrazilianCpf
	TypeBrazilianCnpj
)

func TypeFromByte(b byte) (Type, error) {
	t := Type(b)
	if t > TypeBrazilianCnpj {
		return 0, errors.Wrapf(errs.InvalidArgument, "unknown credential type byte %d", b)
	}
	return t, nil
}

func (t Type) String() string {
	switch t {
	case TypeKycBasic:
		return "kyc_basic"
	case TypeKycFull:
		return "kyc_full"
	case TypeAccreditedInvestor:
		return "accredited_investor"
	case TypeQualifiedPurchaser:
		return "qualified_purchaser"
	case TypeBrazilianCpf:
		return "brazilian_cpf"
	case TypeBrazilianCnpj:
		return "brazilian_cnpj"
	}
	return "unknown"
}

// Status is the issuer-stored credential status. Status and time expiry are
// independent: a credential can be status-Active yet already time-expired.
type Status uint8

const (
	StatusActive Status = iota
	StatusExpired
	StatusRevoked
	StatusSuspended
)

func StatusFromByte(b byte) (Status, error) {
	s := Status(b)
	if s > StatusSuspended {
		return 0, errors.Wrapf(errs.InvalidArgument, "unknown credential status byte %d", b)
	}
	return s, nil
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusExpired:
		return "expired"
	case StatusRevoked:
		return "revoked"
	case StatusSuspended:
		return "suspended"
	}
	return "unknown"
}

// Credential is a typed view of one issuer attestation record.
type Credential struct {
	Subject   solana.PublicKey
	Issuer    solana.PublicKey
	Type      Type
	Status    Status
	IssuedAt  time.Time
	ExpiresAt time.Time
}
