package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Load builds the configuration from defaults plus environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	cfg.Server.Host = getEnv("HTTP_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnv("HTTP_PORT", cfg.Server.Port)
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", cfg.Server.LogLevel)
	cfg.Server.JWTSecret = os.Getenv("JWT_SECRET")

	switch mode := getEnv("DISPATCH_MODE", string(cfg.Dispatch.Mode)); DispatchMode(mode) {
	case DispatchReal, DispatchMock:
		cfg.Dispatch.Mode = DispatchMode(mode)
	default:
		return nil, fmt.Errorf("invalid DISPATCH_MODE %q: must be real or mock", mode)
	}
	var err error
	if cfg.Dispatch.CallTimeout, err = getDuration("AGENT_CALL_TIMEOUT", cfg.Dispatch.CallTimeout); err != nil {
		return nil, err
	}
	if cfg.Dispatch.HealthCheckInterval, err = getDuration("HEALTH_CHECK_INTERVAL", cfg.Dispatch.HealthCheckInterval); err != nil {
		return nil, err
	}
	if cfg.Dispatch.EncryptionKey, err = parseEncryptionKey(os.Getenv("AGENT_TOKEN_ENCRYPTION_KEY")); err != nil {
		return nil, err
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Addr = addr
		cfg.Cache.Password = os.Getenv("REDIS_PASSWORD")
		if db := os.Getenv("REDIS_DB"); db != "" {
			n, convErr := strconv.Atoi(db)
			if convErr != nil {
				return nil, fmt.Errorf("invalid REDIS_DB: %w", convErr)
			}
			cfg.Cache.DB = n
		}
	}

	cfg.Audit.PrivateKeyPath = os.Getenv("AUDIT_PRIVATE_KEY_PATH")
	cfg.Audit.PublicKeyPath = os.Getenv("AUDIT_PUBLIC_KEY_PATH")
	cfg.Audit.Signer = getEnv("AUDIT_SIGNER", "platform")

	if cfg.Queue.WorkerCount, err = getInt("QUEUE_WORKER_COUNT", cfg.Queue.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.Queue.MaxConcurrentRuns, err = getInt("QUEUE_MAX_CONCURRENT_RUNS", cfg.Queue.MaxConcurrentRuns); err != nil {
		return nil, err
	}
	if cfg.Queue.PollInterval, err = getDuration("QUEUE_POLL_INTERVAL", cfg.Queue.PollInterval); err != nil {
		return nil, err
	}
	if cfg.Queue.RunTimeout, err = getDuration("QUEUE_RUN_TIMEOUT", cfg.Queue.RunTimeout); err != nil {
		return nil, err
	}
	if cfg.Queue.GracefulShutdownTimeout, err = getDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.Queue.GracefulShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.Retention.RunTTL, err = getDuration("RETENTION_RUN_TTL", cfg.Retention.RunTTL); err != nil {
		return nil, err
	}
	if cfg.Retention.TaskTTL, err = getDuration("RETENTION_TASK_TTL", cfg.Retention.TaskTTL); err != nil {
		return nil, err
	}
	if cfg.Retention.DeliveryTTL, err = getDuration("RETENTION_DELIVERY_TTL", cfg.Retention.DeliveryTTL); err != nil {
		return nil, err
	}
	if cfg.Retention.SweepInterval, err = getDuration("RETENTION_SWEEP_INTERVAL", cfg.Retention.SweepInterval); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
