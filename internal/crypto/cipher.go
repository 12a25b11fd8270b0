// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SecretCipher seals and opens credential secret values with a passphrase.
// The vault stores whatever SecretCipher produces; callers that prefer to
// encrypt elsewhere can skip it entirely and store opaque strings.
type SecretCipher interface {
	Encrypt(plaintext, passphrase string) (string, error)
	Decrypt(blob, passphrase string) (string, error)
}

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSecretCipher constructs a [SecretCipher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSecretCipher() SecretCipher {
	return &secretCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Encrypt seals plaintext with a key derived from passphrase via Argon2id
// and AES-256-GCM. A fresh 16-byte salt and 12-byte nonce are generated per
// call and prepended to the ciphertext so that Decrypt can recover them:
// blob = Base64(salt ‖ nonce ‖ ciphertext).
func (c *secretCipher) Encrypt(plaintext, passphrase string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.buildGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a blob produced by [secretCipher.Encrypt]. The blob must be
// at least salt (16 bytes) plus nonce (12 bytes) long. Returns an error if
// the blob is malformed, the passphrase is wrong, or the ciphertext is
// corrupted (authentication-tag mismatch).
func (c *secretCipher) Decrypt(blob, passphrase string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	if len(raw) < 16 {
		return "", fmt.Errorf("ciphertext too short")
	}
	salt, rest := raw[:16], raw[16:]

	gcm, err := c.buildGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// An error here almost always means a wrong passphrase, producing a
	// wrong derived key.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}

// buildGCM derives a 256-bit key from passphrase and salt with Argon2id and
// wraps it in an AES-GCM AEAD.
func (c *secretCipher) buildGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		[]byte(passphrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
