package usecase

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/modules/rwa/compliance"
	"github.com/hubtoken/rwa-ledger/modules/rwa/datagateway"
	"github.com/hubtoken/rwa-ledger/modules/rwa/hook"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

type Usecase struct {
	rwaDg       datagateway.RwaDataGateway
	gate        *compliance.Gate
	interceptor *hook.Interceptor
	// program is the module's logical identity, used to derive record and
	// custody addresses. Minting rights are held by this identity, never by
	// a human key, which is what lets the module enforce the supply cap
	// unilaterally.
	program solana.PublicKey
	now     func() time.Time
}

func New(rwaDg datagateway.RwaDataGateway, gate *compliance.Gate, interceptor *hook.Interceptor, program solana.PublicKey) *Usecase {
	return &Usecase{
		rwaDg:       rwaDg,
		gate:        gate,
		interceptor: interceptor,
		program:     program,
		now:         time.Now,
	}
}

func rollback(ctx context.Context, tx datagateway.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
	}
}
