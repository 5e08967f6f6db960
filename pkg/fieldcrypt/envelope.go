package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16

	// Algorithm is reported to clients describing the token format.
	Algorithm = "AES-256-GCM"

	SentinelInvalidFormat = "[Invalid Format]"
	SentinelDecryption    = "[Decryption Error]"

	keyFiller = '0'
	separator = ":"
)

var (
	ErrInvalidFormat = errors.New("fieldcrypt: invalid token format")
	ErrDecryption    = errors.New("fieldcrypt: decryption failed")
)

// DeriveKey normalizes secret to exactly KeySize bytes by right-padding with
// '0' and truncating. It is not a key-derivation function.
func DeriveKey(secret string) []byte {
	key := []byte(secret)
	if len(key) >= KeySize {
		return key[:KeySize:KeySize]
	}
	padded := make([]byte, KeySize)
	n := copy(padded, key)
	for i := n; i < KeySize; i++ {
		padded[i] = keyFiller
	}
	return padded
}

// Envelope seals single string fields into self-describing tokens of the
// form hex(nonce):hex(tag):hex(ciphertext). It is safe for concurrent use.
//
// No associated data is bound into a token, so a token moved to another
// field of the same length still opens.
type Envelope struct {
	aead cipher.AEAD
	rand io.Reader
}

// New builds an AES-256-GCM envelope keyed by DeriveKey(secret).
func New(secret string) (*Envelope, error) {
	block, err := aes.NewCipher(DeriveKey(secret))
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: create cipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: create gcm: %w", err)
	}
	return &Envelope{aead: aead, rand: rand.Reader}, nil
}

// MustNew is New for static configuration; it panics on error.
func MustNew(secret string) *Envelope {
	e, err := New(secret)
	if err != nil {
		panic(err)
	}
	return e
}

// Encrypt seals plaintext under a fresh random nonce. Empty input yields an
// empty token.
func (e *Envelope) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return "", fmt.Errorf("fieldcrypt: generate nonce: %w", err)
	}

	// Seal returns ciphertext || tag
	sealed := e.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ct, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	stats.encrypts.Add(1)
	return hex.EncodeToString(nonce) + separator + hex.EncodeToString(tag) + separator + hex.EncodeToString(ct), nil
}

// Open reverses Encrypt. It returns ErrInvalidFormat when the token does not
// have exactly three segments and ErrDecryption for any other failure,
// including authentication.
func (e *Envelope) Open(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	parts := strings.Split(token, separator)
	if len(parts) != 3 {
		stats.failures.Add(1)
		return "", ErrInvalidFormat
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != NonceSize {
		stats.failures.Add(1)
		return "", ErrDecryption
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != TagSize {
		stats.failures.Add(1)
		return "", ErrDecryption
	}
	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		stats.failures.Add(1)
		return "", ErrDecryption
	}

	sealed := make([]byte, 0, len(ct)+TagSize)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)
	plain, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		stats.failures.Add(1)
		return "", ErrDecryption
	}

	stats.decrypts.Add(1)
	return string(plain), nil
}

// Decrypt is Open for display: failures become sentinel strings instead of
// errors.
func (e *Envelope) Decrypt(token string) string {
	plain, err := e.Open(token)
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return SentinelInvalidFormat
	case err != nil:
		return SentinelDecryption
	}
	return plain
}
