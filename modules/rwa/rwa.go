package rwa

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/internal/config"
	"github.com/hubtoken/rwa-ledger/internal/postgres"
	rwaapi "github.com/hubtoken/rwa-ledger/modules/rwa/api"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
	"github.com/hubtoken/rwa-ledger/modules/rwa/compliance"
	rwadatagateway "github.com/hubtoken/rwa-ledger/modules/rwa/datagateway"
	"github.com/hubtoken/rwa-ledger/modules/rwa/hook"
	rwapostgres "github.com/hubtoken/rwa-ledger/modules/rwa/repository/postgres"
	rwausecase "github.com/hubtoken/rwa-ledger/modules/rwa/usecase"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

// DefaultProgram is the module identity used when none is configured.
const DefaultProgram = "Comp4ssDzXcLeu2MnLuGNNFC4cmLPMng8qWHSVerteR"

// Module owns the ledger's wiring: persistence, the compliance gate, the
// transfer interceptor and the API surface.
type Module struct {
	Usecase *rwausecase.Usecase

	cleanupFuncs []func(context.Context) error
}

// Shutdown releases the module's resources. Satisfies do.ShutdownerWithContextAndError.
func (m *Module) Shutdown(ctx context.Context) error {
	for _, cleanup := range m.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	var rwaDg rwadatagateway.RwaDataGateway
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(conf.Modules.RWA.Database) {
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Modules.RWA.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for rwa module")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		rwaDg = rwapostgres.NewRepository(pg)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for rwa module is not supported", conf.Modules.RWA.Database)
	}

	program, err := solana.PublicKeyFromBase58(lo.Ternary(conf.Modules.RWA.Program != "", conf.Modules.RWA.Program, DefaultProgram))
	if err != nil {
		return nil, errors.Wrap(err, "invalid program address")
	}
	issuerProgram, err := solana.PublicKeyFromBase58(conf.Modules.RWA.IssuerProgram)
	if err != nil {
		return nil, errors.Wrap(err, "invalid issuer program address")
	}

	var accountSource attestation.AccountSource
	switch strings.ToLower(conf.Modules.RWA.AttestationSource) {
	case "", "postgresql", "postgres", "pg":
		accountSource = newDataGatewayAccountSource(rwaDg)
	case "solana":
		endpoint := conf.Modules.RWA.SolanaRPC
		if endpoint == "" {
			endpoint = conf.Network.DefaultRPCEndpoint()
		}
		accountSource = attestation.NewRPCAccountSource(endpoint)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q attestation source is not supported", conf.Modules.RWA.AttestationSource)
	}

	gate := compliance.NewGate(issuerProgram, accountSource, rwaDg)
	interceptor := hook.NewInterceptor(gate, rwaDg)
	uc := rwausecase.New(rwaDg, gate, interceptor, program)

	// Mount API
	apiHandlers := lo.Uniq(conf.Modules.RWA.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			rwaHTTPHandler := rwaapi.NewHTTPHandler(conf.Network, uc)
			if err := rwaHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount RWA API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	module := &Module{
		Usecase:      uc,
		cleanupFuncs: cleanupFuncs,
	}
	do.ProvideValue(injector, module)
	return module, nil
}

// dataGatewayAccountSource serves credential reads from the issuer mirror in
// the module database.
type dataGatewayAccountSource struct {
	dg rwadatagateway.RwaReaderDataGateway
}

func newDataGatewayAccountSource(dg rwadatagateway.RwaReaderDataGateway) attestation.AccountSource {
	return &dataGatewayAccountSource{dg: dg}
}

func (s *dataGatewayAccountSource) GetAccount(ctx context.Context, address solana.PublicKey) (attestation.Account, error) {
	account, err := s.dg.GetCredentialAccount(ctx, address)
	if err != nil {
		return attestation.Account{}, errors.WithStack(err)
	}
	return account, nil
}
