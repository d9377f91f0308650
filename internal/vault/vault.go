package vault

import (
	"encoding/base64"
	"fmt"

	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/metrics"
	"github.com/dtroode/habiro-server/internal/model"
)

// Vault encodes sealed envelopes for storage in text columns.
type Vault struct {
	encryptor EnvelopeEncryptor
	logger    *logger.Logger
}

func New(encryptor EnvelopeEncryptor, logger *logger.Logger) *Vault {
	return &Vault{encryptor: encryptor, logger: logger}
}

// Encrypt returns the stored body and key material for plaintext.
func (v *Vault) Encrypt(plaintext string) (body string, key string, err error) {
	ciphertext, keyMaterial, err := v.encryptor.Seal([]byte(plaintext))
	if err != nil {
		return "", "", fmt.Errorf("failed to seal message: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), base64.StdEncoding.EncodeToString(keyMaterial), nil
}

// Decrypt is the strict counterpart of Encrypt.
func (v *Vault) Decrypt(body, key string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("%w: malformed body: %w", model.ErrDecryptionDegraded, err)
	}
	keyMaterial, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("%w: malformed key: %w", model.ErrDecryptionDegraded, err)
	}

	plaintext, err := v.encryptor.Open(ciphertext, keyMaterial)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrDecryptionDegraded, err)
	}
	return string(plaintext), nil
}

// Reveal decrypts a stored message and never fails: when the envelope
// cannot be opened the raw stored body is returned and the failure logged.
func (v *Vault) Reveal(msg model.Message) string {
	plaintext, err := v.Decrypt(msg.Body, msg.Key)
	if err != nil {
		metrics.MessagesDecryptionDegradedTotal.Inc()
		v.logger.Warn("Vault: returning raw message body",
			"message_id", msg.ID,
			"error", err)
		return msg.Body
	}
	return plaintext
}
