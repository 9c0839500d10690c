package api

import (
	"strings"
	"time"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/service/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	identityKey     = "identity"
)

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger puts a request-scoped logger into the request context and
// writes one line per request once it is served.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With().Str("request_id", c.GetString(requestIDKey)).Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		event := reqLog.Info()
		if status >= 500 {
			event = reqLog.Error()
		}
		if id, ok := identityFrom(c); ok {
			event = event.Int64("user_id", id.UserID)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

type Authenticator struct {
	identities identity.IdentityUseCase
}

func NewAuthenticator(identities identity.IdentityUseCase) *Authenticator {
	return &Authenticator{identities: identities}
}

// RequireIdentity resolves "Authorization: Token <key>" and rejects the
// request with 401 or 403 when that fails.
func (a *Authenticator) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			respondError(c, errs.Unauthenticated("Authentication credentials were not provided"))
			return
		}
		id, err := a.identities.Resolve(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(identityKey, *id)
		c.Next()
	}
}

func tokenFromHeader(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Token") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func identityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
