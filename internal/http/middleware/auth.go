package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

const principalKey = "principal"

// ProfileStore resolves the acting profile. Returns (nil, nil) when the
// profile does not exist.
type ProfileStore interface {
	GetProfile(ctx context.Context, id int64) (*model.Profile, error)
}

// TokenParser extracts a profile id from a bearer access token.
type TokenParser interface {
	ProfileID(raw string) (int64, error)
}

// Auth resolves the caller to an existing profile, either from a
// Bearer access token or from the legacy profile_id header, and stores
// it on the request context. Unresolvable callers get 401.
func Auth(parser TokenParser, profiles ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := resolveProfileID(c, parser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid credentials"})
			return
		}

		profile, err := profiles.GetProfile(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
			return
		}

		c.Set(principalKey, profile)
		c.Next()
	}
}

func resolveProfileID(c *gin.Context, parser TokenParser) (int64, bool) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		id, err := parser.ProfileID(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return 0, false
		}
		return id, true
	}

	raw := c.GetHeader("profile_id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func MustPrincipal(c *gin.Context) (*model.Profile, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	profile, ok := value.(*model.Profile)
	return profile, ok
}
