// Package config loads and validates platform configuration from the
// environment. Each subsystem gets a typed struct with Default* defaults;
// Load applies env overrides on top.
package config

import (
	"encoding/hex"
	"fmt"
	"time"
)

// DispatchMode selects how stage work reaches agents.
type DispatchMode string

// Dispatch modes.
const (
	// DispatchReal invokes the agent's HTTP endpoint (or open stream).
	DispatchReal DispatchMode = "real"
	// DispatchMock synthesizes stage outputs without contacting agents.
	DispatchMock DispatchMode = "mock"
)

// Config is the umbrella configuration object returned by Load.
type Config struct {
	Server    ServerConfig
	Queue     *QueueConfig
	Dispatch  DispatchConfig
	Cache     CacheConfig
	Audit     AuditConfig
	Gateway   GatewayConfig
	Webhook   WebhookConfig
	Retention RetentionConfig
}

// ServerConfig holds HTTP bind settings.
type ServerConfig struct {
	Host     string
	Port     string
	LogLevel string

	// JWTSecret verifies collaborator-issued access tokens on the gateway.
	JWTSecret string
}

// Addr returns the host:port bind address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// DispatchConfig controls agent invocation.
type DispatchConfig struct {
	Mode DispatchMode

	// CallTimeout bounds a single agent call unless the stage overrides it.
	CallTimeout time.Duration

	// HealthCheckInterval is the period of the agent /health probe sweep.
	HealthCheckInterval time.Duration

	// EncryptionKey is the optional 32-byte AES key for agent bearer
	// secrets, decoded from hex. Nil disables secret encryption.
	EncryptionKey []byte
}

// CacheConfig holds Redis connection settings.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int

	// Enabled is false when no cache address is configured; all callers
	// degrade to direct durable-store queries.
	Enabled bool
}

// AuditConfig holds the optional RS256 signing keypair.
type AuditConfig struct {
	// PrivateKeyPath is a PEM-encoded RSA private key. Empty means audit
	// records are written unsigned.
	PrivateKeyPath string
	PublicKeyPath  string
	Signer         string
}

// GatewayConfig controls persistent agent streams.
type GatewayConfig struct {
	HeartbeatInterval time.Duration
	LivenessTimeout   time.Duration
	WriteTimeout      time.Duration
}

// WebhookConfig controls outbound delivery.
type WebhookConfig struct {
	RequestTimeout time.Duration
	BaseBackoff    time.Duration
	MaxBackoff     time.Duration
	MaxAttempts    int
	SweepBatchSize int
}

// RetentionConfig controls the background purge of terminal records.
// Zero TTLs disable the corresponding purge.
type RetentionConfig struct {
	// RunTTL is how long terminal workflow runs are kept after completion.
	RunTTL time.Duration

	// TaskTTL is how long done tasks are kept after completion.
	TaskTTL time.Duration

	// DeliveryTTL is how long settled webhook deliveries are kept.
	DeliveryTTL time.Duration

	SweepInterval time.Duration
}

// DefaultConfig returns the built-in defaults for every subsystem.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     "8080",
			LogLevel: "info",
		},
		Queue: DefaultQueueConfig(),
		Dispatch: DispatchConfig{
			Mode:                DispatchReal,
			CallTimeout:         60 * time.Second,
			HealthCheckInterval: 30 * time.Second,
		},
		Cache: CacheConfig{},
		Gateway: GatewayConfig{
			HeartbeatInterval: 30 * time.Second,
			LivenessTimeout:   45 * time.Second,
			WriteTimeout:      10 * time.Second,
		},
		Webhook: WebhookConfig{
			RequestTimeout: 10 * time.Second,
			BaseBackoff:    60 * time.Second,
			MaxBackoff:     3600 * time.Second,
			MaxAttempts:    5,
			SweepBatchSize: 50,
		},
		Retention: RetentionConfig{
			RunTTL:        30 * 24 * time.Hour,
			TaskTTL:       30 * 24 * time.Hour,
			DeliveryTTL:   7 * 24 * time.Hour,
			SweepInterval: time.Hour,
		},
	}
}

// parseEncryptionKey decodes and validates the agent-token encryption key.
func parseEncryptionKey(hexKey string) ([]byte, error) {
	if hexKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}
