package entity

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// ClaimRecord marks one paid-out claim. At most one record can ever exist per
// (epoch, holder) pair; rejecting a duplicate insert is the sole double-claim
// defense.
type ClaimRecord struct {
	Epoch         solana.PublicKey
	Holder        solana.PublicKey
	AmountClaimed uint64
	ClaimedAt     time.Time
}
