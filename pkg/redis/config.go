package redis

import "time"

// Config holds connection settings for the optional shared rate-limit store.
// ConnectionURL is empty when the service runs with the in-process limiter.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // ConnectionURL should be in the format "redis://:password@localhost:6379/0". Empty disables Redis.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of retry attempts to connect to the server.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // ConnectTimeout is the overall timeout for establishing the connection.
}

// Enabled reports whether a Redis connection is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
