package attestation

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredential() Credential {
	return Credential{
		Subject:   solana.NewWallet().PublicKey(),
		Issuer:    solana.NewWallet().PublicKey(),
		Type:      TypeKycFull,
		Status:    StatusActive,
		IssuedAt:  time.Unix(1700000000, 0).UTC(),
		ExpiresAt: time.Unix(1800000000, 0).UTC(),
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	credential := testCredential()
	parsed, err := Parse(Encode(credential))
	require.NoError(t, err)
	assert.Equal(t, credential, parsed)
}

func TestParseShortBuffer(t *testing.T) {
	t.Parallel()
	data := Encode(testCredential())
	_, err := Parse(data[:MinCredentialSize-1])
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = Parse(nil)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestParseTrailingBytesIgnored(t *testing.T) {
	t.Parallel()
	credential := testCredential()
	data := append(Encode(credential), make([]byte, 32)...)
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, credential, parsed)
}

func TestParseUnknownEnumBytes(t *testing.T) {
	t.Parallel()
	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		data := Encode(testCredential())
		data[typeOffset] = byte(TypeBrazilianCnpj) + 1
		_, err := Parse(data)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()
		data := Encode(testCredential())
		data[statusOffset] = byte(StatusSuspended) + 1
		_, err := Parse(data)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestTypeFromByte(t *testing.T) {
	t.Parallel()
	for b := byte(0); b <= byte(TypeBrazilianCnpj); b++ {
		credentialType, err := TypeFromByte(b)
		require.NoError(t, err)
		assert.NotEqual(t, "unknown", credentialType.String())
	}
	_, err := TypeFromByte(byte(TypeBrazilianCnpj) + 1)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestStatusFromByte(t *testing.T) {
	t.Parallel()
	for b := byte(0); b <= byte(StatusSuspended); b++ {
		status, err := StatusFromByte(b)
		require.NoError(t, err)
		assert.NotEqual(t, "unknown", status.String())
	}
	_, err := StatusFromByte(byte(StatusSuspended) + 1)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestCredentialAddress(t *testing.T) {
	t.Parallel()
	issuerProgram := solana.NewWallet().PublicKey()
	subject := solana.NewWallet().PublicKey()

	address, err := CredentialAddress(issuerProgram, subject)
	require.NoError(t, err)
	again, err := CredentialAddress(issuerProgram, subject)
	require.NoError(t, err)
	assert.Equal(t, address, again)

	other, err := CredentialAddress(issuerProgram, solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.NotEqual(t, address, other)
}
