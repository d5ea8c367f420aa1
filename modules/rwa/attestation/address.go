package attestation

import (
	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
)

// CredentialSeed prefixes credential account derivation, so any caller can
// locate a subject's credential without a lookup table.
var CredentialSeed = []byte("credential")

// CredentialAddress derives the deterministic account address of the
// credential the issuer program holds for subject.
func CredentialAddress(issuerProgram, subject solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress([][]byte{CredentialSeed, subject.Bytes()}, issuerProgram)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive credential address")
	}
	return address, nil
}
