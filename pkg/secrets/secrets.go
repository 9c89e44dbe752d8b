// Package secrets handles agent bearer-secret hashing and optional
// AES-GCM encryption. The platform stores a SHA-256 hash for verification
// and, when an encryption key is configured, a ciphertext it can decrypt
// to authenticate outbound dispatches.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

// Hash returns the hex SHA-256 of a secret.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// VerifyHash reports whether secret matches the stored hex hash, in
// constant time.
func VerifyHash(secret, storedHash string) bool {
	computed := Hash(secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// Box encrypts and decrypts agent secrets with AES-256-GCM. A nil Box
// means encryption is not configured; agents then cannot be dispatched to
// with a decrypted bearer token.
type Box struct {
	aead cipher.AEAD
}

// NewBox creates a Box from a 32-byte key. Returns nil when key is empty.
func NewBox(key []byte) (*Box, error) {
	if len(key) == 0 {
		return nil, nil
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &Box{aead: aead}, nil
}

// Enabled reports whether encryption is configured.
func (b *Box) Enabled() bool {
	return b != nil && b.aead != nil
}

// Encrypt seals plaintext and returns hex(nonce || ciphertext).
func (b *Box) Encrypt(plaintext string) (string, error) {
	if !b.Enabled() {
		return "", fmt.Errorf("secret encryption is not configured")
	}
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt opens hex(nonce || ciphertext) produced by Encrypt.
func (b *Box) Decrypt(ciphertextHex string) (string, error) {
	if !b.Enabled() {
		return "", fmt.Errorf("secret encryption is not configured")
	}
	sealed, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext hex: %w", err)
	}
	if len(sealed) < b.aead.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ct := sealed[:b.aead.NonceSize()], sealed[b.aead.NonceSize():]
	plaintext, err := b.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt secret: %w", err)
	}
	return string(plaintext), nil
}
