package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

func (u *Usecase) GetProperty(ctx context.Context, address solana.PublicKey) (entity.Property, error) {
	property, err := u.rwaDg.GetPropertyByAddress(ctx, address)
	if err != nil {
		return entity.Property{}, errors.Wrap(err, "failed to get property")
	}
	return property, nil
}

func (u *Usecase) GetProperties(ctx context.Context, limit int32, offset int32) ([]entity.Property, error) {
	properties, err := u.rwaDg.GetProperties(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get properties")
	}
	return properties, nil
}

func (u *Usecase) GetRevenueEpochs(ctx context.Context, property solana.PublicKey) ([]entity.RevenueEpoch, error) {
	epochs, err := u.rwaDg.GetRevenueEpochs(ctx, property)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get revenue epochs")
	}
	return epochs, nil
}

// GetClaimRecords lists paid claims for one epoch of a property.
func (u *Usecase) GetClaimRecords(ctx context.Context, property solana.PublicKey, epochNumber uint64) ([]entity.ClaimRecord, error) {
	epoch, err := u.rwaDg.GetRevenueEpoch(ctx, property, epochNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get revenue epoch")
	}
	records, err := u.rwaDg.GetClaimRecords(ctx, epoch.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim records")
	}
	return records, nil
}

// GetBalance returns the holder's token balance for a property.
func (u *Usecase) GetBalance(ctx context.Context, propertyAddress, holder solana.PublicKey) (uint64, error) {
	property, err := u.rwaDg.GetPropertyByAddress(ctx, propertyAddress)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get property")
	}
	balance, err := u.rwaDg.GetBalance(ctx, property.Mint, holder)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get balance")
	}
	return balance, nil
}

// GetHolders lists non-zero balances for a property, largest first.
func (u *Usecase) GetHolders(ctx context.Context, propertyAddress solana.PublicKey, limit int32, offset int32) (entity.Property, []entity.Holding, error) {
	property, err := u.rwaDg.GetPropertyByAddress(ctx, propertyAddress)
	if err != nil {
		return entity.Property{}, nil, errors.Wrap(err, "failed to get property")
	}
	holdings, err := u.rwaDg.GetHolders(ctx, property.Mint, limit, offset)
	if err != nil {
		return entity.Property{}, nil, errors.Wrap(err, "failed to get holders")
	}
	return property, holdings, nil
}
