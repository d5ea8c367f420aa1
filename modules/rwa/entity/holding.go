package entity

import "github.com/gagliardetto/solana-go"

// Holding is one holder's balance of a property token.
type Holding struct {
	Holder solana.PublicKey
	Amount uint64
}
