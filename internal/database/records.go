package database

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"

	"gorm.io/gorm"
)

// The dispatcher gives account, event and RSVP services one typed
// insert/query/update/delete surface. Each record kind contributes a
// single entry to recordTable: a constructor from a field map, a
// query-by-shape predicate, and an update-key resolver. Adding a kind
// means adding a table entry, not new query code in the services.
type recordOps struct {
	build   func(fields map[string]any) any
	query   func(tx *gorm.DB, fields map[string]any) (any, error)
	resolve func(tx *gorm.DB, fields map[string]any) (any, bool)
}

var errUpdateTarget = errors.New("update key missing or target not found")

var recordTable = map[models.RecordKind]recordOps{
	models.KindOrganizer: {
		build: func(f map[string]any) any {
			return &models.Organizer{
				OrganizerName: fieldStr(f, "organizer_name"),
				Email:         fieldStr(f, "email"),
				Contact:       fieldStr(f, "contact"),
				Password:      fieldStr(f, "password"),
				Name:          fieldStr(f, "name"),
			}
		},
		query: func(tx *gorm.DB, f map[string]any) (any, error) {
			var orgs []models.Organizer
			err := tx.Where("organizer_name = ?", fieldStr(f, "organizer_name")).Find(&orgs).Error
			if err != nil {
				return nil, err
			}
			if len(orgs) == 0 {
				return nil, nil
			}
			return orgs, nil
		},
		resolve: func(tx *gorm.DB, f map[string]any) (any, bool) {
			name := fieldStr(f, "organizer_name")
			if name == "" {
				return nil, false
			}
			var org models.Organizer
			if err := tx.Where("organizer_name = ?", name).First(&org).Error; err != nil {
				return nil, false
			}
			return &org, true
		},
	},
	models.KindOrganizerDetails: {
		build: func(f map[string]any) any {
			return &models.OrganizerDetails{
				OrganizerName: fieldStr(f, "organizer_name"),
				Email:         fieldStr(f, "email"),
				Contact:       fieldStr(f, "contact"),
			}
		},
	},
	models.KindOrganizerSession: {
		build: func(f map[string]any) any {
			return &models.OrganizerSession{
				PK:            fieldStr(f, "pk"),
				OrganizerName: fieldStr(f, "organizer_name"),
				IP:            fieldStr(f, "ip"),
				Browser:       fieldStr(f, "browser"),
				OS:            fieldStr(f, "os"),
				CreatedAt:     fieldI64(f, "created_at"),
				ExpiredAt:     fieldI64(f, "expired_at"),
			}
		},
	},
	models.KindOrganizerMeta: {
		build: func(f map[string]any) any {
			return &models.OrganizerMeta{
				OrganizerName: fieldStr(f, "organizer_name"),
				Reason:        models.MetaReason(fieldStr(f, "reason")),
				IP:            fieldStr(f, "ip"),
				Country:       fieldStr(f, "country"),
				OS:            fieldStr(f, "os"),
			}
		},
	},
	models.KindEvent: {
		build: func(f map[string]any) any {
			return &models.Event{
				OrganizerName: fieldStr(f, "organizer_name"),
				EventID:       fieldI64(f, "event_id"),
				Title:         fieldStr(f, "title"),
				Description:   fieldStr(f, "description"),
				Budget:        fieldF64(f, "budget"),
				EventDate:     fieldI64(f, "event_date"),
			}
		},
		// Shape dispatch: a title filter targets one event, an
		// organizer_name filter lists all of the organizer's events.
		query: func(tx *gorm.DB, f map[string]any) (any, error) {
			if title, ok := f["title"]; ok {
				var ev models.Event
				err := tx.Where("title = ?", title).First(&ev).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}
				if err != nil {
					return nil, err
				}
				return &ev, nil
			}
			if name, ok := f["organizer_name"]; ok {
				var evs []models.Event
				if err := tx.Where("organizer_name = ?", name).Find(&evs).Error; err != nil {
					return nil, err
				}
				if len(evs) == 0 {
					return nil, nil
				}
				return evs, nil
			}
			return nil, nil
		},
		resolve: func(tx *gorm.DB, f map[string]any) (any, bool) {
			name := fieldStr(f, "organizer_name")
			if name == "" {
				return nil, false
			}
			var ev models.Event
			if err := tx.Where("organizer_name = ?", name).First(&ev).Error; err != nil {
				return nil, false
			}
			return &ev, true
		},
	},
	models.KindRSVP: {
		build: func(f map[string]any) any {
			return &models.RSVP{
				EventID:  fieldI64(f, "event_id"),
				Username: fieldStr(f, "username"),
				Title:    fieldStr(f, "title"),
				Status:   models.RSVPStatus(fieldStr(f, "status")),
			}
		},
		query: func(tx *gorm.DB, f map[string]any) (any, error) {
			q := tx.Where("event_id = ?", fieldI64(f, "event_id"))
			if username, ok := f["username"]; ok {
				q = q.Where("username = ?", username)
			}
			var rs []models.RSVP
			if err := q.Find(&rs).Error; err != nil {
				return nil, err
			}
			if len(rs) == 0 {
				return nil, nil
			}
			return rs, nil
		},
		// RSVP rows are keyed by the (event_id, username) composite.
		resolve: func(tx *gorm.DB, f map[string]any) (any, bool) {
			eventID := fieldI64(f, "event_id")
			username := fieldStr(f, "username")
			if eventID == 0 || username == "" {
				return nil, false
			}
			var r models.RSVP
			err := tx.Where("event_id = ? AND username = ?", eventID, username).First(&r).Error
			if err != nil {
				return nil, false
			}
			return &r, true
		},
	},
}

// Insert constructs the kind-specific record from fields, persists it
// and returns it with generated columns populated. Any persistence
// error rolls the write back and reports failure.
func Insert(db *gorm.DB, kind models.RecordKind, fields map[string]any) (any, bool) {
	ops, ok := recordTable[kind]
	if !ok || ops.build == nil {
		return nil, false
	}
	rec := ops.build(fields)
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
	if err != nil {
		slog.Error("record insert failed", "kind", string(kind), "err", err)
		return nil, false
	}
	return rec, true
}

// Query dispatches to the kind's filter predicate, chosen by which
// filter fields are present. Returns false when nothing matches.
func Query(db *gorm.DB, kind models.RecordKind, fields map[string]any) (any, bool) {
	ops, ok := recordTable[kind]
	if !ok || ops.query == nil {
		return nil, false
	}
	res, err := ops.query(db, fields)
	if err != nil {
		slog.Error("record query failed", "kind", string(kind), "err", err)
		return nil, false
	}
	if res == nil {
		return nil, false
	}
	return res, true
}

// Update re-resolves the target record via the kind's lookup key, then
// overwrites every field present in the input onto it. Returns false,
// without mutating anything, when a required key is missing or no
// target resolves.
func Update(db *gorm.DB, kind models.RecordKind, fields map[string]any) (any, bool) {
	ops, ok := recordTable[kind]
	if !ok || ops.resolve == nil {
		return nil, false
	}
	var target any
	err := db.Transaction(func(tx *gorm.DB) error {
		t, found := ops.resolve(tx, fields)
		if !found {
			return errUpdateTarget
		}
		if err := tx.Model(t).Updates(fields).Error; err != nil {
			return err
		}
		target = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, errUpdateTarget) {
			slog.Error("record update failed", "kind", string(kind), "err", err)
		}
		return nil, false
	}
	return target, true
}

// Delete removes an already-resolved record instance. Deleting a row
// that is no longer present reports failure, not a crash.
func Delete(db *gorm.DB, record any) bool {
	if record == nil {
		return false
	}
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(record)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		slog.Error("record delete failed", "err", err)
		return false
	}
	return affected > 0
}

// GetOrganizer looks an organizer up by name, or by email when the
// input contains "@".
func GetOrganizer(db *gorm.DB, data string) (*models.Organizer, error) {
	q := db.Where("organizer_name = ?", data)
	if strings.Contains(data, "@") {
		q = db.Where("email = ?", data)
	}
	var org models.Organizer
	if err := q.First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetOrganizerSession is the point lookup used by the authorization
// gate.
func GetOrganizerSession(db *gorm.DB, token string) (*models.OrganizerSession, error) {
	var s models.OrganizerSession
	if err := db.Where("pk = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func fieldStr(fields map[string]any, key string) string {
	if v, ok := fields[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func fieldI64(fields map[string]any, key string) int64 {
	switch v := fields[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case uint:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func fieldF64(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
