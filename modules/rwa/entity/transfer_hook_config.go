package entity

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// TransferHookConfig registers a property mint with the transfer interceptor.
// Created once per property; a second initialization is rejected.
type TransferHookConfig struct {
	Property  solana.PublicKey
	Mint      solana.PublicKey
	Authority solana.PublicKey
	CreatedAt time.Time
}
