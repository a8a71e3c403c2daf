package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Role identifies what kind of caller a bearer token belongs to
type Role string

const (
	RoleHost     Role = "host"
	RoleGuest    Role = "guest"
	RoleOperator Role = "operator"
)

const principalKey = "principal"

// Claims are the JWT claims the API accepts. Subject holds the numeric host or guest id.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request
type Principal struct {
	Role Role
	ID   uint64
}

// TokenAuthority signs and verifies HS256 bearer tokens
type TokenAuthority struct {
	secret       []byte
	issuer       string
	timeProvider coreport.TimeProvider
}

// NewTokenAuthority creates a token authority for the given secret and issuer
func NewTokenAuthority(secret, issuer string, timeProvider coreport.TimeProvider) *TokenAuthority {
	return &TokenAuthority{
		secret:       []byte(secret),
		issuer:       issuer,
		timeProvider: timeProvider,
	}
}

// Issue signs a token for a caller, valid for ttl
func (a *TokenAuthority) Issue(role Role, id uint64, ttl time.Duration) (string, error) {
	now := a.timeProvider.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   strconv.FormatUint(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses a signed token and returns its principal
func (a *TokenAuthority) Verify(token string) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.timeProvider.Now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}

	switch claims.Role {
	case RoleHost, RoleGuest, RoleOperator:
	default:
		return Principal{}, fmt.Errorf("%w: unknown role %q", errs.ErrUnauthorized, claims.Role)
	}

	var id uint64
	if claims.Role != RoleOperator || claims.Subject != "" {
		id, err = strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return Principal{}, fmt.Errorf("%w: subject must be a numeric id", errs.ErrUnauthorized)
		}
	}
	return Principal{Role: claims.Role, ID: id}, nil
}

// Authenticate requires a valid bearer token and stores its principal on the context
func Authenticate(authority *TokenAuthority, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			abortWithError(c, errs.ErrUnauthorized, "Missing bearer token")
			return
		}

		principal, err := authority.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.Warn("Rejected bearer token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": RequestID(c),
				"error":      err.Error(),
			})
			abortWithError(c, errs.ErrUnauthorized, "Invalid bearer token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole lets the request through only for the given roles
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			abortWithError(c, errs.ErrUnauthorized, "Missing bearer token")
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, errs.ErrForbidden, "Role not allowed")
	}
}

// RequireOwner lets the request through when the caller has role and the id in path param.
// Operators may act on any resource.
func RequireOwner(role Role, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			abortWithError(c, errs.ErrUnauthorized, "Missing bearer token")
			return
		}
		if principal.Role == RoleOperator {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			abortWithError(c, errs.ErrInvalidRequest, "Invalid "+param+" format")
			return
		}
		if principal.Role != role || principal.ID != id {
			abortWithError(c, errs.ErrForbidden, "Not allowed to act on this resource")
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the caller stored by Authenticate
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

func abortWithError(c *gin.Context, err error, message string) {
	c.AbortWithStatusJSON(errs.HTTPStatus(err), dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}
