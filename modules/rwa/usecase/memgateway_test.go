package usecase

import (
	"context"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/modules/rwa/datagateway"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

// In-memory datagateway fake with copy-on-begin transaction semantics: a
// transaction mutates a clone of the store and Commit swaps the clone in, so
// a rolled-back operation leaves the committed state untouched.

type balanceKey struct {
	mint   solana.PublicKey
	holder solana.PublicKey
}

type epochKey struct {
	property solana.PublicKey
	number   uint64
}

type claimKey struct {
	epoch  solana.PublicKey
	holder solana.PublicKey
}

type memStore struct {
	properties    map[solana.PublicKey]entity.Property
	propertyOrder []solana.PublicKey
	mints         map[solana.PublicKey]solana.PublicKey
	hookConfigs   map[solana.PublicKey]entity.TransferHookConfig
	epochs        map[epochKey]entity.RevenueEpoch
	claims        map[claimKey]entity.ClaimRecord
	credentials   map[solana.PublicKey]attestation.Account
	balances      map[balanceKey]uint64
	funding       map[solana.PublicKey]uint64
	events        []entity.Event
}

func newMemStore() *memStore {
	return &memStore{
		properties:  map[solana.PublicKey]entity.Property{},
		mints:       map[solana.PublicKey]solana.PublicKey{},
		hookConfigs: map[solana.PublicKey]entity.TransferHookConfig{},
		epochs:      map[epochKey]entity.RevenueEpoch{},
		claims:      map[claimKey]entity.ClaimRecord{},
		credentials: map[solana.PublicKey]attestation.Account{},
		balances:    map[balanceKey]uint64{},
		funding:     map[solana.PublicKey]uint64{},
	}
}

func (s *memStore) clone() *memStore {
	return &memStore{
		properties:    maps.Clone(s.properties),
		propertyOrder: slices.Clone(s.propertyOrder),
		mints:         maps.Clone(s.mints),
		hookConfigs:   maps.Clone(s.hookConfigs),
		epochs:        maps.Clone(s.epochs),
		claims:        maps.Clone(s.claims),
		credentials:   maps.Clone(s.credentials),
		balances:      maps.Clone(s.balances),
		funding:       maps.Clone(s.funding),
		events:        slices.Clone(s.events),
	}
}

func (s *memStore) GetPropertyByAddress(_ context.Context, address solana.PublicKey) (entity.Property, error) {
	property, ok := s.properties[address]
	if !ok {
		return entity.Property{}, errors.WithStack(errs.NotFound)
	}
	return property, nil
}

func (s *memStore) GetPropertyByAddressForUpdate(ctx context.Context, address solana.PublicKey) (entity.Property, error) {
	return s.GetPropertyByAddress(ctx, address)
}

func (s *memStore) GetProperties(_ context.Context, limit int32, offset int32) ([]entity.Property, error) {
	var out []entity.Property
	for i := int(offset); i < len(s.propertyOrder) && len(out) < int(limit); i++ {
		out = append(out, s.properties[s.propertyOrder[i]])
	}
	return out, nil
}

func (s *memStore) GetTransferHookConfig(_ context.Context, property solana.PublicKey) (entity.TransferHookConfig, error) {
	config, ok := s.hookConfigs[property]
	if !ok {
		return entity.TransferHookConfig{}, errors.WithStack(errs.NotFound)
	}
	return config, nil
}

func (s *memStore) GetRevenueEpoch(_ context.Context, property solana.PublicKey, epochNumber uint64) (entity.RevenueEpoch, error) {
	epoch, ok := s.epochs[epochKey{property: property, number: epochNumber}]
	if !ok {
		return entity.RevenueEpoch{}, errors.WithStack(errs.NotFound)
	}
	return epoch, nil
}

func (s *memStore) GetRevenueEpochs(_ context.Context, property solana.PublicKey) ([]entity.RevenueEpoch, error) {
	var out []entity.RevenueEpoch
	for key, epoch := range s.epochs {
		if key.property == property {
			out = append(out, epoch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EpochNumber < out[j].EpochNumber })
	return out, nil
}

func (s *memStore) GetClaimRecords(_ context.Context, epoch solana.PublicKey) ([]entity.ClaimRecord, error) {
	var out []entity.ClaimRecord
	for key, record := range s.claims {
		if key.epoch == epoch {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Holder.String() < out[j].Holder.String() })
	return out, nil
}

func (s *memStore) GetCredentialAccount(_ context.Context, address solana.PublicKey) (attestation.Account, error) {
	account, ok := s.credentials[address]
	if !ok {
		return attestation.Account{}, errors.WithStack(errs.NotFound)
	}
	return account, nil
}

func (s *memStore) CreateProperty(_ context.Context, property entity.Property) error {
	if _, ok := s.properties[property.Address]; ok {
		return errors.Wrap(errs.Duplicate, "property address already in use")
	}
	if _, ok := s.mints[property.Mint]; ok {
		return errors.Wrap(errs.Duplicate, "mint already in use")
	}
	s.properties[property.Address] = property
	s.propertyOrder = append(s.propertyOrder, property.Address)
	s.mints[property.Mint] = property.Address
	return nil
}

func (s *memStore) UpdatePropertySupply(_ context.Context, address solana.PublicKey, circulatingSupply uint64, updatedAt time.Time) error {
	property, ok := s.properties[address]
	if !ok {
		return errors.WithStack(errs.NotFound)
	}
	property.CirculatingSupply = circulatingSupply
	property.UpdatedAt = updatedAt
	s.properties[address] = property
	return nil
}

func (s *memStore) UpdatePropertyDetails(_ context.Context, address solana.PublicKey, details entity.PropertyDetails, updatedAt time.Time) error {
	property, ok := s.properties[address]
	if !ok {
		return errors.WithStack(errs.NotFound)
	}
	property.Details = details
	property.UpdatedAt = updatedAt
	s.properties[address] = property
	return nil
}

func (s *memStore) UpdatePropertyActive(_ context.Context, address solana.PublicKey, isActive bool, updatedAt time.Time) error {
	property, ok := s.properties[address]
	if !ok {
		return errors.WithStack(errs.NotFound)
	}
	property.IsActive = isActive
	property.UpdatedAt = updatedAt
	s.properties[address] = property
	return nil
}

func (s *memStore) CreateTransferHookConfig(_ context.Context, config entity.TransferHookConfig) error {
	if _, ok := s.hookConfigs[config.Property]; ok {
		return errors.Wrap(errs.Duplicate, "transfer hook config already exists")
	}
	s.hookConfigs[config.Property] = config
	return nil
}

func (s *memStore) CreateRevenueEpoch(_ context.Context, epoch entity.RevenueEpoch) error {
	key := epochKey{property: epoch.Property, number: epoch.EpochNumber}
	if _, ok := s.epochs[key]; ok {
		return errors.Wrap(errs.Duplicate, "revenue epoch already exists")
	}
	s.epochs[key] = epoch
	return nil
}

func (s *memStore) CreateClaimRecord(_ context.Context, record entity.ClaimRecord) error {
	key := claimKey{epoch: record.Epoch, holder: record.Holder}
	if _, ok := s.claims[key]; ok {
		return errors.Wrap(errs.Duplicate, "claim record already exists")
	}
	s.claims[key] = record
	return nil
}

func (s *memStore) UpsertCredentialAccount(_ context.Context, account attestation.Account) error {
	s.credentials[account.Address] = account
	return nil
}

func (s *memStore) RecordEvent(_ context.Context, event entity.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.events = append(s.events, event)
	return nil
}

func (s *memStore) GetBalance(_ context.Context, mint solana.PublicKey, holder solana.PublicKey) (uint64, error) {
	return s.balances[balanceKey{mint: mint, holder: holder}], nil
}

func (s *memStore) GetHolders(_ context.Context, mint solana.PublicKey, limit int32, offset int32) ([]entity.Holding, error) {
	var holdings []entity.Holding
	for key, amount := range s.balances {
		if key.mint == mint && amount > 0 {
			holdings = append(holdings, entity.Holding{Holder: key.holder, Amount: amount})
		}
	}
	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].Amount != holdings[j].Amount {
			return holdings[i].Amount > holdings[j].Amount
		}
		return holdings[i].Holder.String() < holdings[j].Holder.String()
	})
	var out []entity.Holding
	for i := int(offset); i < len(holdings) && len(out) < int(limit); i++ {
		out = append(out, holdings[i])
	}
	return out, nil
}

func (s *memStore) GetFundingBalance(_ context.Context, account solana.PublicKey) (uint64, error) {
	return s.funding[account], nil
}

func (s *memStore) CreditBalance(_ context.Context, mint solana.PublicKey, holder solana.PublicKey, amount uint64) error {
	s.balances[balanceKey{mint: mint, holder: holder}] += amount
	return nil
}

func (s *memStore) DebitBalance(_ context.Context, mint solana.PublicKey, holder solana.PublicKey, amount uint64) error {
	key := balanceKey{mint: mint, holder: holder}
	if s.balances[key] < amount {
		return errors.Wrapf(errs.InsufficientBalance, "balance is %d, debit is %d", s.balances[key], amount)
	}
	s.balances[key] -= amount
	return nil
}

func (s *memStore) CreditFunding(_ context.Context, account solana.PublicKey, amount uint64) error {
	s.funding[account] += amount
	return nil
}

func (s *memStore) DebitFunding(_ context.Context, account solana.PublicKey, amount uint64) error {
	if s.funding[account] < amount {
		return errors.Wrapf(errs.InsufficientBalance, "funding balance is %d, debit is %d", s.funding[account], amount)
	}
	s.funding[account] -= amount
	return nil
}

type memDataGateway struct {
	*memStore
}

var _ datagateway.RwaDataGateway = (*memDataGateway)(nil)

func newMemDataGateway() *memDataGateway {
	return &memDataGateway{memStore: newMemStore()}
}

func (g *memDataGateway) BeginRwaTx(_ context.Context) (datagateway.RwaDataGatewayWithTx, error) {
	return &memTx{memStore: g.memStore.clone(), gw: g}, nil
}

type memTx struct {
	*memStore
	gw   *memDataGateway
	done bool
}

var _ datagateway.RwaDataGatewayWithTx = (*memTx)(nil)

func (t *memTx) Commit(_ context.Context) error {
	if !t.done {
		t.gw.memStore = t.memStore
		t.done = true
	}
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	t.done = true
	return nil
}
