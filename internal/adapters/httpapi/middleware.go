package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cropai/internal/infrastructure/database"
	"cropai/internal/infrastructure/i18n"
	"cropai/internal/infrastructure/session"
)

// SessionCookie is the cookie carrying the opaque session ID.
const SessionCookie = "cropai_session"

const (
	ctxSessionKey = "cropai.session"
	ctxLocaleKey  = "cropai.locale"
)

// RequestLogger logs every request with its outcome.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			log.Error("request completed with errors", append(fields, zap.String("errors", c.Errors.String()))...)
		} else {
			log.Info("request completed", fields...)
		}
	}
}

// WithSession ensures every request is bound to a live session record,
// minting a new one (and its cookie) when needed.
func (s *Server) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var record session.Record
		if id, err := c.Cookie(SessionCookie); err == nil {
			if found, ok := s.sessions.Get(id); ok {
				record = found
			}
		}
		if record.ID == "" {
			record = *s.sessions.Create()
			c.SetCookie(SessionCookie, record.ID, int(time.Until(record.ExpiresAt).Seconds()), "/", "", false, true)
		}
		c.Set(ctxSessionKey, record)
		c.Next()
	}
}

// WithLocale builds the per-request locale session. The language comes
// from, in order: the stored preference (user row for logged-in clients,
// session record otherwise), the Accept-Language header, the fallback.
func (s *Server) WithLocale() gin.HandlerFunc {
	return func(c *gin.Context) {
		record := sessionRecord(c)
		ctx := c.Request.Context()

		var prefs i18n.PreferenceStore
		if record.UserID != 0 {
			prefs = database.NewUserPreferenceStore(s.users, record.UserID, s.log)
		} else {
			prefs = s.sessions.Preferences(record.ID)
		}

		ls := s.locales.SessionFor(ctx, prefs)
		if _, stored := prefs.Load(ctx); !stored {
			if code, ok := s.locales.DetectFromHeader(c.GetHeader("Accept-Language")); ok {
				ls.SetLanguage(ctx, code)
			}
		}
		c.Set(ctxLocaleKey, ls)
		c.Next()
	}
}

// RequireUser rejects requests whose session is not bound to a user.
func (s *Server) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionRecord(c).UserID == 0 {
			respondError(c, http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionRecord(c *gin.Context) session.Record {
	if v, ok := c.Get(ctxSessionKey); ok {
		if record, ok := v.(session.Record); ok {
			return record
		}
	}
	return session.Record{}
}

// localeSession returns the request's locale session, or nil when the
// route is not behind WithLocale. Use translate for nil-safe lookups.
func localeSession(c *gin.Context) *i18n.Session {
	if v, ok := c.Get(ctxLocaleKey); ok {
		if ls, ok := v.(*i18n.Session); ok {
			return ls
		}
	}
	return nil
}

// translate resolves key for the request's language, degrading to the
// literal key when no locale session is attached.
func translate(c *gin.Context, key string, data map[string]any) string {
	if ls := localeSession(c); ls != nil {
		return ls.Translate(key, data)
	}
	return key
}
