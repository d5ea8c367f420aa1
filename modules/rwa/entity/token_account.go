package entity

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

// Fixed byte layout of an asset-ledger token account. Only the leading fields
// are specified here; the interceptor only needs the owner.
const (
	tokenAccountMintOffset   = 0
	tokenAccountOwnerOffset  = 32
	tokenAccountAmountOffset = 64

	// MinTokenAccountSize is the smallest buffer that still contains the
	// owner field.
	MinTokenAccountSize = tokenAccountOwnerOffset + solana.PublicKeyLength

	// TokenAccountSize covers mint, owner and amount.
	TokenAccountSize = tokenAccountAmountOffset + 8
)

// TokenAccount is the decoded prefix of a raw asset-ledger account.
type TokenAccount struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

// DecodeTokenAccountOwner extracts the owning address at its fixed offset.
// Short buffers are a hard failure, never a default value.
func DecodeTokenAccountOwner(data []byte) (solana.PublicKey, error) {
	if len(data) < MinTokenAccountSize {
		return solana.PublicKey{}, errors.Wrapf(errs.InvalidArgument, "token account data too short: %d bytes, need at least %d", len(data), MinTokenAccountSize)
	}
	return solana.PublicKeyFromBytes(data[tokenAccountOwnerOffset : tokenAccountOwnerOffset+solana.PublicKeyLength]), nil
}

// DecodeTokenAccount parses the full fixed-layout prefix.
func DecodeTokenAccount(data []byte) (TokenAccount, error) {
	if len(data) < TokenAccountSize {
		return TokenAccount{}, errors.Wrapf(errs.InvalidArgument, "token account data too short: %d bytes, need at least %d", len(data), TokenAccountSize)
	}
	return TokenAccount{
		Mint:   solana.PublicKeyFromBytes(data[tokenAccountMintOffset : tokenAccountMintOffset+solana.PublicKeyLength]),
		Owner:  solana.PublicKeyFromBytes(data[tokenAccountOwnerOffset : tokenAccountOwnerOffset+solana.PublicKeyLength]),
		Amount: binary.LittleEndian.Uint64(data[tokenAccountAmountOffset : tokenAccountAmountOffset+8]),
	}, nil
}

// Encode serializes the account into its fixed byte layout.
func (a TokenAccount) Encode() []byte {
	data := make([]byte, TokenAccountSize)
	copy(data[tokenAccountMintOffset:], a.Mint.Bytes())
	copy(data[tokenAccountOwnerOffset:], a.Owner.Bytes())
	binary.LittleEndian.PutUint64(data[tokenAccountAmountOffset:], a.Amount)
	return data
}
