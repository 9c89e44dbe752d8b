package audit

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/conductor-hq/conductor/pkg/config"
)

// Algorithm is the only signature algorithm the platform produces.
const Algorithm = "RS256"

// Signer signs canonical JSON with an RSA private key. A nil Signer writes
// unsigned records; verification then reports them as unsigned rather than
// invalid.
type Signer struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	signer  string
}

// LoadSigner reads the configured keypair. Returns (nil, nil) when no
// private key is configured.
func LoadSigner(cfg config.AuditConfig) (*Signer, error) {
	if cfg.PrivateKeyPath == "" {
		return nil, nil
	}
	privPEM, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read audit private key: %w", err)
	}
	private, err := parsePrivateKey(privPEM)
	if err != nil {
		return nil, err
	}

	public := &private.PublicKey
	if cfg.PublicKeyPath != "" {
		pubPEM, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("read audit public key: %w", err)
		}
		public, err = parsePublicKey(pubPEM)
		if err != nil {
			return nil, err
		}
	}

	return &Signer{private: private, public: public, signer: cfg.Signer}, nil
}

// NewSigner wraps an in-memory key (useful for testing).
func NewSigner(private *rsa.PrivateKey, signer string) *Signer {
	return &Signer{private: private, public: &private.PublicKey, signer: signer}
}

// Name returns the signer identity recorded in signatures.
func (s *Signer) Name() string {
	if s == nil {
		return ""
	}
	return s.signer
}

// Sign produces the hex RS256 signature over the canonical JSON form of v.
func (s *Signer) Sign(v interface{}) (string, error) {
	canonical, err := CanonicalJSON(v)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(canonical)
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.private, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("rs256 sign: %w", err)
	}
	return hex.EncodeToString(sig), nil
}

// Verify checks a hex RS256 signature against the canonical JSON form of v.
func (s *Signer) Verify(v interface{}, hexSig string) error {
	canonical, err := CanonicalJSON(v)
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(hexSig)
	if err != nil {
		return fmt.Errorf("decode signature hex: %w", err)
	}
	digest := sha256.Sum256(canonical)
	if err := rsa.VerifyPKCS1v15(s.public, crypto.SHA256, digest[:], sig); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

func parsePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in audit private key")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse audit private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("audit private key is not RSA")
	}
	return key, nil
}

func parsePublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in audit public key")
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse audit public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("audit public key is not RSA")
	}
	return key, nil
}
