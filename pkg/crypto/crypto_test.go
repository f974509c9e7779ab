package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncryptor(t *testing.T) *Encryptor {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	e, err := NewEncryptor(key)
	require.NoError(t, err)
	return e
}

func TestNewEncryptorKeyLength(t *testing.T) {
	_, err := NewEncryptor(make([]byte, 16))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")

	_, err = NewEncryptor(make([]byte, 32))
	require.NoError(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	e := newTestEncryptor(t)

	for _, plaintext := range []string{
		"hunter2",
		"",
		"sk-proj-äöü-😀-very-long-api-key-with-unicode",
	} {
		ciphertext, err := e.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		got, err := e.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	e := newTestEncryptor(t)

	a, err := e.Encrypt("same secret")
	require.NoError(t, err)
	b, err := e.Encrypt("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	e := newTestEncryptor(t)

	for _, ciphertext := range []string{
		"not base64 at all!!",
		"YWJj", // valid base64, shorter than a nonce
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	} {
		_, err := e.Decrypt(ciphertext)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCiphertext)
	}
}

func TestDecryptWrongKey(t *testing.T) {
	e := newTestEncryptor(t)
	ciphertext, err := e.Encrypt("secret")
	require.NoError(t, err)

	other, err := NewEncryptor(make([]byte, 32))
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
