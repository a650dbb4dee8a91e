// Package crypto criptografa os tokens de integrações antes de gravá-los no banco
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	ivLength   = 16
	saltLength = 16
	keyLength  = 32
	tagLength  = 16

	// Parâmetros do scrypt
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var (
	ErrEmptySecret   = errors.New("chave de criptografia não configurada")
	ErrInvalidFormat = errors.New("formato de dado criptografado inválido")
)

// Encrypter usa AES-256-GCM com chave derivada por scrypt a partir de um salt aleatório.
// O formato gerado é salt:iv:tag:ciphertext em base64.
type Encrypter struct {
	secret []byte
}

func NewEncrypter(secret string) (*Encrypter, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &Encrypter{secret: []byte(secret)}, nil
}

func (e *Encrypter) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	iv := make([]byte, ivLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("erro ao gerar salt: %w", err)
	}
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("erro ao gerar iv: %w", err)
	}

	gcm, err := e.gcm(salt)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(tag),
		base64.StdEncoding.EncodeToString(ciphertext),
	}, ":"), nil
}

func (e *Encrypter) Decrypt(encoded string) (string, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 4 {
		return "", ErrInvalidFormat
	}

	decoded := make([][]byte, len(parts))
	for i, part := range parts {
		b, err := base64.StdEncoding.DecodeString(part)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		decoded[i] = b
	}

	salt, iv, tag, ciphertext := decoded[0], decoded[1], decoded[2], decoded[3]
	if len(iv) != ivLength || len(tag) != tagLength {
		return "", ErrInvalidFormat
	}

	gcm, err := e.gcm(salt)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("erro ao descriptografar: %w", err)
	}

	return string(plaintext), nil
}

func (e *Encrypter) gcm(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(e.secret, salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("erro ao derivar chave: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cifra: %w", err)
	}

	return cipher.NewGCMWithNonceSize(block, ivLength)
}
