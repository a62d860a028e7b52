package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

const identityKey = "identity"

// Claims are the identity provider claims the service relies on.
type Claims struct {
	PreferredUsername string `json:"preferred_username"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and syncs the caller's user row.
type Authenticator struct {
	secret     []byte
	identities core.IdentityService
	log        *logger.Logger
}

func NewAuthenticator(secret string, identities core.IdentityService, log *logger.Logger) *Authenticator {
	return &Authenticator{
		secret:     []byte(secret),
		identities: identities,
		log:        log.With("Middleware", "Authenticator"),
	}
}

// Verify parses the token and returns the identity it asserts.
func (a *Authenticator) Verify(token string) (*core.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", core.ErrUnauthenticated)
	}

	return &core.Identity{
		UserID:    userID,
		Username:  claims.PreferredUsername,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
	}, nil
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return a.middleware(true)
}

// OptionalAuth lets anonymous requests through but still rejects invalid tokens.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return a.middleware(false)
}

func (a *Authenticator) middleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
				return
			}
			c.Next()
			return
		}

		identity, err := a.Verify(token)
		if err != nil {
			a.log.Debug("rejected bearer token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if _, err := a.identities.SyncUser(c.Request.Context(), *identity); err != nil {
			if errors.Is(err, core.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			a.log.Error("identity sync failed", "user_id", identity.UserID.String(), "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFrom returns the authenticated caller, or nil for anonymous requests.
func identityFrom(c *gin.Context) *core.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*core.Identity)
	return identity
}

// callerID returns the authenticated user id, or uuid.Nil.
func callerID(c *gin.Context) uuid.UUID {
	if identity := identityFrom(c); identity != nil {
		return identity.UserID
	}
	return uuid.Nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
