package handler

import (
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
)

// registrationTokenTTL is how long the token handed out at sign-up stays valid
const registrationTokenTTL = 24 * time.Hour

// TokenIssuer signs bearer tokens for newly registered callers
type TokenIssuer interface {
	Issue(role middleware.Role, id uint64, ttl time.Duration) (string, error)
}
