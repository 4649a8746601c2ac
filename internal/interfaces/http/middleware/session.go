package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/givehope/backend/internal/infrastructure/config"
	"github.com/givehope/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key for the guest cart session ID
const SessionIDKey = "cart_session_id"

// SessionMiddleware ensures every request carries a cart session ID.
// A new ID is minted and set as a cookie when the request has none,
// so guest carts survive across requests without authentication.
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := readSessionCookie(c, cfg.CookieName)
		if sessionID == "" {
			sessionID = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     cfg.Path,
				Domain:   cfg.Domain,
				MaxAge:   int(cfg.TTL.Seconds()),
				Secure:   cfg.Secure,
				HttpOnly: true,
				SameSite: parseSameSite(cfg.SameSite),
			})
		}

		c.Set(SessionIDKey, sessionID)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithSessionID(ctx, log, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// readSessionCookie returns the cookie value when it holds a valid UUID.
// Garbage values are discarded so a fresh session is issued instead.
func readSessionCookie(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(value); err != nil {
		return ""
	}
	return value
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// GetSessionID retrieves the cart session ID from gin.Context
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionIDKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
