package contact

import "time"

// Config holds contact endpoint settings loaded from the environment.
type Config struct {
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`   // Exact origins allowed to call the endpoint from a browser.
	RateLimitQuota  int           `env:"RATE_LIMIT_QUOTA" envDefault:"6"`    // Requests allowed per window per caller IP.
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"` // Window over which the quota replenishes.
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"6144"`   // Request body size cap.
	SubjectPrefix   string        `env:"CONTACT_SUBJECT_PREFIX"`             // Optional prefix for the email subject line.
}

// Field bounds applied before the submission is embedded into the email body.
const (
	maxNameLen    = 200
	maxEmailLen   = 200
	maxMessageLen = 5000
)
