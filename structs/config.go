package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // TennisBot
	Environment    string        // development, production
	Port           string        // :8080
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	QueryTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address  string
	Username string
	Password string
	DB       int

	// Connection pool
	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration

	// Timeouts
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Retry
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	// Application TTLs
	StatsTTL       time.Duration
	IdempotencyTTL time.Duration
}

type RateLimitConfig struct {
	Enabled bool

	// Login attempts, strictest tier
	LoginLimit  int
	LoginWindow time.Duration

	// Authenticated admin endpoints
	AdminLimit  int
	AdminWindow time.Duration

	// Public order/contact intake
	IntakeLimit  int
	IntakeWindow time.Duration

	// Everything else
	GeneralLimit  int
	GeneralWindow time.Duration
}

type AuthConfig struct {
	AdminPasswordHash string // argon2id encoded hash
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

type EmailConfig struct {
	ApiKey string
	From   string
}
