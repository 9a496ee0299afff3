package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sealed, err := Encrypt("discord-access-token", testKey)
	require.NoError(t, err)
	assert.NotEqual(t, "discord-access-token", sealed)

	plain, err := Decrypt(sealed, testKey)
	require.NoError(t, err)
	assert.Equal(t, "discord-access-token", plain)
}

func TestEncryptProducesDistinctCiphertexts(t *testing.T) {
	a, err := Encrypt("value", testKey)
	require.NoError(t, err)
	b, err := Encrypt("value", testKey)
	require.NoError(t, err)

	// random nonce per call
	assert.NotEqual(t, a, b)
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	sealed, err := Encrypt("value", testKey)
	require.NoError(t, err)

	otherKey := base64.StdEncoding.EncodeToString([]byte("ffffffffffffffffffffffffffffffff"))
	_, err = Decrypt(sealed, otherKey)
	assert.Error(t, err)
}

func TestEncryptRejectsBadKeys(t *testing.T) {
	_, err := Encrypt("value", "")
	assert.Error(t, err)

	_, err = Encrypt("value", "not-base64!!!")
	assert.Error(t, err)

	shortKey := base64.StdEncoding.EncodeToString([]byte("too-short"))
	_, err = Encrypt("value", shortKey)
	assert.Error(t, err)
}

func TestDecryptRejectsTruncatedCiphertext(t *testing.T) {
	_, err := Decrypt(base64.StdEncoding.EncodeToString([]byte("xy")), testKey)
	assert.Error(t, err)
}
