package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypter_RoundTrip(t *testing.T) {
	enc, err := NewEncrypter("segredo-de-teste")
	require.NoError(t, err)

	encrypted, err := enc.Encrypt("IGQVJ-token-longo")
	require.NoError(t, err)
	assert.Len(t, strings.Split(encrypted, ":"), 4)
	assert.NotContains(t, encrypted, "IGQVJ-token-longo")

	plaintext, err := enc.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "IGQVJ-token-longo", plaintext)
}

func TestEncrypter_RandomSaltAndIV(t *testing.T) {
	enc, err := NewEncrypter("segredo-de-teste")
	require.NoError(t, err)

	a, err := enc.Encrypt("mesmo texto")
	require.NoError(t, err)
	b, err := enc.Encrypt("mesmo texto")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEncrypter_WrongSecret(t *testing.T) {
	enc, _ := NewEncrypter("chave-a")
	other, _ := NewEncrypter("chave-b")

	encrypted, err := enc.Encrypt("token")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestEncrypter_InvalidFormat(t *testing.T) {
	enc, _ := NewEncrypter("chave")

	for _, input := range []string{"", "a:b", "a:b:c:d", "###:###:###:###"} {
		_, err := enc.Decrypt(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, input)
	}
}

func TestNewEncrypter_EmptySecret(t *testing.T) {
	_, err := NewEncrypter("  ")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
