package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(utils.EnvOrDefault("JWT_SECRET", "horizon-dev-secret"))
}

// IssueToken signs a bearer token for a staff account.
func IssueToken(admin *models.Admin) (string, error) {
	ttl := 12 * time.Hour
	claims := authClaims{
		Role: string(admin.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Username,
			ID:        uintToString(admin.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func parseToken(raw string) (models.Actor, error) {
	var claims authClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}

	role := models.Role(claims.Role)
	if !role.IsValid() {
		return models.Actor{}, errors.New("invalid role")
	}
	return models.Actor{ID: stringToUint(claims.ID), Role: role}, nil
}

// Auth resolves the acting principal from the Authorization header. When
// no valid token is present the actor is an anonymous guest; route groups
// that need staff apply RequireRole on top.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := models.Actor{Role: models.RoleGuest}

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if parsed, err := parseToken(raw); err == nil {
				actor = parsed
			}
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireRole aborts with 401/403 unless the actor sits at or above min.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.Role == models.RoleGuest {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}
		if !actor.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor placed in the context by Auth, defaulting
// to an anonymous guest.
func ActorFrom(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{Role: models.RoleGuest}
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func stringToUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
