package session

import (
	"time"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/database"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session lifetime windows. Expiry is fixed at creation; a session is
// never extended by use.
const (
	LongMaxAge  = 30 * 24 * time.Hour // organizer opted to stay logged in
	ShortMaxAge = 90 * time.Hour
)

// MaxAge returns the lifetime window for a new session.
func MaxAge(keepLogin bool) time.Duration {
	if keepLogin {
		return LongMaxAge
	}
	return ShortMaxAge
}

// Create issues a new opaque token and persists the session record.
// The caller is responsible for recording the login audit row.
func Create(db *gorm.DB, organizerName string, meta ClientMeta, keepLogin bool) (*models.OrganizerSession, bool) {
	now := time.Now().Unix()
	rec, ok := database.Insert(db, models.KindOrganizerSession, map[string]any{
		"pk":             uuid.NewString(),
		"organizer_name": organizerName,
		"ip":             meta.IP,
		"browser":        meta.Browser,
		"os":             meta.OS,
		"created_at":     now,
		"expired_at":     now + int64(MaxAge(keepLogin).Seconds()),
	})
	if !ok {
		return nil, false
	}
	s, ok := rec.(*models.OrganizerSession)
	return s, ok
}

// FindByToken is a point lookup. gorm.ErrRecordNotFound distinguishes
// an absent session from a storage failure.
func FindByToken(db *gorm.DB, token string) (*models.OrganizerSession, error) {
	return database.GetOrganizerSession(db, token)
}

// Delete removes a session record, for explicit logout and for lazy
// expiry cleanup. Deleting an already-deleted session reports failure.
func Delete(db *gorm.DB, s *models.OrganizerSession) bool {
	if s == nil {
		return false
	}
	return database.Delete(db, s)
}
