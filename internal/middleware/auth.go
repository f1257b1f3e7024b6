package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/session"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContextSessionKey is where the gate binds the resolved session for
// the wrapped handler to consume.
const ContextSessionKey = "currentSession"

// Rejection messages. Missing, unknown, expired and malformed tokens
// all collapse to two generic messages so callers cannot probe session
// existence.
const (
	MsgTokenMissing   = "Authentication token not provided."
	MsgSessionInvalid = "Session expired/invalid, please login again"
)

// AuthRequired gates every protected route: resolve the token from the
// session cookie, validate it against the store, bind the session onto
// the request context or reject. Expired sessions are deleted on
// lookup; there is no background sweep and no sliding expiry.
func AuthRequired(db *gorm.DB, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			util.Respond(c, http.StatusForbidden, MsgTokenMissing, gin.H{})
			c.Abort()
			return
		}

		s, err := session.FindByToken(db, token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Respond(c, http.StatusForbidden, MsgSessionInvalid, gin.H{})
			} else {
				// store failure degrades to the strictest denial
				slog.Error("session lookup failed", "err", err)
				util.Respond(c, http.StatusForbidden, MsgTokenMissing, gin.H{})
			}
			c.Abort()
			return
		}

		if time.Now().Unix() > s.ExpiredAt {
			// lazy cleanup; same response as an unknown token
			if !session.Delete(db, s) {
				slog.Error("expired session cleanup failed", "organizer", s.OrganizerName)
			}
			util.Respond(c, http.StatusForbidden, MsgSessionInvalid, gin.H{})
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session the gate bound to this request.
func CurrentSession(c *gin.Context) (*models.OrganizerSession, bool) {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*models.OrganizerSession)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}
