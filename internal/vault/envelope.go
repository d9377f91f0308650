// Package vault keeps message bodies encrypted at rest.
//
// Every message is sealed under its own random key and the key is stored
// next to the ciphertext. This gives per-message key rotation but no
// protection against someone who can read the message table; swapping in a
// stronger EnvelopeEncryptor does not require touching callers.
package vault

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// EnvelopeEncryptor seals data under a fresh key per call.
type EnvelopeEncryptor interface {
	Seal(plaintext []byte) (ciphertext []byte, keyMaterial []byte, err error)
	Open(ciphertext []byte, keyMaterial []byte) ([]byte, error)
}

var errCiphertextTooShort = errors.New("ciphertext too short")

// XChaCha seals with XChaCha20-Poly1305. The random nonce is prepended to
// the ciphertext.
type XChaCha struct {
	random io.Reader
}

// NewXChaCha returns an encryptor reading keys and nonces from crypto/rand.
func NewXChaCha() *XChaCha {
	return &XChaCha{random: rand.Reader}
}

func (x *XChaCha) Seal(plaintext []byte) ([]byte, []byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(x.random, key); err != nil {
		return nil, nil, fmt.Errorf("failed to generate key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(x.random, nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), key, nil
}

func (x *XChaCha) Open(ciphertext []byte, keyMaterial []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(keyMaterial)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	if len(ciphertext) < aead.NonceSize()+aead.Overhead() {
		return nil, errCiphertextTooShort
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open ciphertext: %w", err)
	}
	return plaintext, nil
}
