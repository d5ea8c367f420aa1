package config

import (
	"github.com/hubtoken/rwa-ledger/internal/postgres"
)

type Config struct {
	// Database to use as the persistence substrate. Currently only "postgres" is supported.
	Database string `mapstructure:"database"`

	Postgres postgres.Config `mapstructure:"postgres"`

	// APIHandlers to mount. Currently only "http" is supported.
	APIHandlers []string `mapstructure:"api_handlers"`

	// Program is the base58 address of the module's logical identity. Record
	// and custody addresses are derived from it.
	Program string `mapstructure:"program"`

	// IssuerProgram is the base58 address of the trusted attestation issuer
	// service. Credential accounts not owned by it are rejected.
	IssuerProgram string `mapstructure:"issuer_program"`

	// AttestationSource selects where credential accounts are read from:
	// "postgres" (issuer-mirrored accounts in the module database, default)
	// or "solana" (live account reads via RPC).
	AttestationSource string `mapstructure:"attestation_source"`

	// SolanaRPC overrides the network's default RPC endpoint for the
	// "solana" attestation source.
	SolanaRPC string `mapstructure:"solana_rpc"`
}
