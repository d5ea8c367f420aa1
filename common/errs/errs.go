package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested record is not found.
	NotFound = ErrorKind("Not Found")

	// Duplicate is returned when creating a record at an address/key that is
	// already in use. It is the replay guard for epoch and claim creation.
	Duplicate = ErrorKind("Already Exists")

	// Unauthorized is returned when the caller is not the recorded authority.
	Unauthorized = ErrorKind("Unauthorized")

	// InvalidArgument is returned on length/range/zero-amount validation failures.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned for unsupported configuration values.
	Unsupported = ErrorKind("Unsupported")

	// ConflictSetting is returned when persisted settings conflict with the
	// current configuration (e.g. db version mismatch).
	ConflictSetting = ErrorKind("Conflict Setting")

	// ComplianceRequired is returned when the compliance gate denies a
	// balance-changing event. Use compliance.DenialError to inspect the reason.
	ComplianceRequired = ErrorKind("Compliance Required")

	// PropertyNotActive is returned when an operation requires an active
	// property but issuance has been toggled off.
	PropertyNotActive = ErrorKind("Property Not Active")

	// SupplyExceeded is returned when a mint would push circulating supply
	// above the property's total supply cap.
	SupplyExceeded = ErrorKind("Supply Exceeded")

	// InsufficientSupply is returned when a burn exceeds circulating supply.
	InsufficientSupply = ErrorKind("Insufficient Supply")

	// InsufficientBalance is returned when a holder balance cannot cover the
	// requested operation.
	InsufficientBalance = ErrorKind("Insufficient Balance")

	// InsufficientVaultBalance is returned when an epoch's custody account
	// cannot cover a computed claim.
	InsufficientVaultBalance = ErrorKind("Insufficient Vault Balance")

	// NoHolders is returned when depositing revenue while circulating supply is zero.
	NoHolders = ErrorKind("No Token Holders")

	// ClaimTooSmall is returned when a computed claim rounds down to zero.
	ClaimTooSmall = ErrorKind("Claim Too Small")

	// OverflowUint64 is returned when widened claim math does not fit in uint64.
	OverflowUint64 = ErrorKind("overflow uint64")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
