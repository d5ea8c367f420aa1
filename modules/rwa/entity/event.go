package entity

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

type EventType string

const (
	EventPropertyCreated            EventType = "property_created"
	EventPropertyDetailsUpdated     EventType = "property_details_updated"
	EventPropertyStatusToggled      EventType = "property_status_toggled"
	EventTransferHookInitialized    EventType = "transfer_hook_initialized"
	EventCredentialVerified         EventType = "credential_verified"
	EventTransferComplianceVerified EventType = "transfer_compliance_verified"
	EventTokensMinted               EventType = "tokens_minted"
	EventTokensBurned               EventType = "tokens_burned"
	EventTokensTransferred          EventType = "tokens_transferred"
	EventRevenueDeposited           EventType = "revenue_deposited"
	EventRevenueClaimed             EventType = "revenue_claimed"
)

// Event is one audit record. Every successful balance-changing operation and
// every gate pass emits one; unused fields stay zero.
type Event struct {
	Type     EventType
	Property solana.PublicKey
	// Subject is the address the event is about (destination, holder, ...).
	Subject solana.PublicKey
	// Credential is the attestation account referenced by a gate pass.
	Credential     solana.PublicKey
	CredentialType string
	Amount         uint64
	// CirculatingSupply after the operation, for mint/burn events.
	CirculatingSupply uint64
	EpochNumber       uint64
	// HolderBalance is the balance used in the claim payout formula.
	HolderBalance uint64
	Timestamp     time.Time
}
