package middleware

import (
	"tennisbot_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// RateLimitCounter is the slice of the cache service the rate limiter
// depends on.
type RateLimitCounter interface {
	IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error)
}

type Middleware struct {
	logger  *gecho.Logger
	cfg     *structs.Config
	counter RateLimitCounter
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, counter RateLimitCounter) *Middleware {
	return &Middleware{
		logger:  logger,
		cfg:     cfg,
		counter: counter,
	}
}
