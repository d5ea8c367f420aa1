package datagateway

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

// Balance gateways back the asset-ledger and funding-currency state the
// module operates on: token balances per (mint, holder) and funding balances
// per account (authority wallets and epoch custody vaults).

type BalanceReaderDataGateway interface {
	// GetBalance returns the holder's token balance. Missing rows read as 0.
	GetBalance(ctx context.Context, mint solana.PublicKey, holder solana.PublicKey) (uint64, error)
	// GetHolders returns non-zero balances for a mint, largest first.
	GetHolders(ctx context.Context, mint solana.PublicKey, limit int32, offset int32) ([]entity.Holding, error)
	// GetFundingBalance returns an account's funding-currency balance. Missing rows read as 0.
	GetFundingBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
}

type BalanceWriterDataGateway interface {
	CreditBalance(ctx context.Context, mint solana.PublicKey, holder solana.PublicKey, amount uint64) error
	// DebitBalance returns errs.InsufficientBalance if the holder's balance cannot cover amount.
	DebitBalance(ctx context.Context, mint solana.PublicKey, holder solana.PublicKey, amount uint64) error
	CreditFunding(ctx context.Context, account solana.PublicKey, amount uint64) error
	// DebitFunding returns errs.InsufficientBalance if the account's funding balance cannot cover amount.
	DebitFunding(ctx context.Context, account solana.PublicKey, amount uint64) error
}
