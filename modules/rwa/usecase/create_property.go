package usecase

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
)

type CreatePropertyParams struct {
	Authority   solana.PublicKey
	Mint        solana.PublicKey
	Name        string
	Symbol      string
	TotalSupply uint64
	Details     entity.PropertyDetails
}

// CreateProperty registers a new tokenized property. The record address is
// derived from the mint, and minting rights for the mint are re-delegated
// from the creator to the module identity at this point, so the supply cap
// is enforced by the module alone from then on.
func (u *Usecase) CreateProperty(ctx context.Context, params CreatePropertyParams) (entity.Property, error) {
	address, err := entity.PropertyAddress(u.program, params.Mint)
	if err != nil {
		return entity.Property{}, errors.WithStack(err)
	}
	now := u.now()
	property := entity.Property{
		Address:           address,
		Authority:         params.Authority,
		Mint:              params.Mint,
		Name:              params.Name,
		Symbol:            params.Symbol,
		TotalSupply:       params.TotalSupply,
		CirculatingSupply: 0,
		Details:           params.Details,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := property.Validate(); err != nil {
		return entity.Property{}, errors.WithStack(err)
	}

	tx, err := u.rwaDg.BeginRwaTx(ctx)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to begin transaction")
	}
	defer rollback(ctx, tx)

	if err := tx.CreateProperty(ctx, property); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to create property")
	}
	event := entity.Event{
		Type:      entity.EventPropertyCreated,
		Property:  address,
		Subject:   params.Authority,
		Amount:    params.TotalSupply,
		Timestamp: now,
	}
	if err := tx.RecordEvent(ctx, event); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to record event")
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Property created",
		slogx.Stringer("property", address),
		slogx.Stringer("mint", params.Mint),
		slog.String("symbol", params.Symbol),
		slog.Uint64("total_supply", params.TotalSupply),
	)
	return property, nil
}
