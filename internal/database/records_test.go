package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/config"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"

	"gorm.io/gorm"
)

// setupDB opens a uniquely named shared in-memory database so all
// pooled connections see the same schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Init(config.DatabaseConfig{Path: dsn})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	return db
}

func TestInsertAndQueryOrganizer(t *testing.T) {
	db := setupDB(t)

	rec, ok := Insert(db, models.KindOrganizer, map[string]any{
		"organizer_name": "alice",
		"email":          "alice@example.com",
		"password":       "hashed",
		"contact":        "9612105975",
		"name":           "Alice",
	})
	if !ok {
		t.Fatal("Insert(organizer) failed")
	}
	org, ok := rec.(*models.Organizer)
	if !ok || org.ID == 0 {
		t.Fatalf("Insert(organizer) = %#v, want persisted record with generated id", rec)
	}
	if org.CreatedAt == 0 {
		t.Error("Insert(organizer) did not populate created_at")
	}

	res, ok := Query(db, models.KindOrganizer, map[string]any{"organizer_name": "alice"})
	if !ok {
		t.Fatal("Query(organizer) found nothing")
	}
	orgs := res.([]models.Organizer)
	if len(orgs) != 1 || orgs[0].OrganizerName != "alice" {
		t.Errorf("Query(organizer) = %#v, want one record for alice", orgs)
	}

	if _, ok := Query(db, models.KindOrganizer, map[string]any{"organizer_name": "nobody"}); ok {
		t.Error("Query(organizer) for absent name reported found")
	}
}

func TestQueryEventByShape(t *testing.T) {
	db := setupDB(t)

	for i, title := range []string{"Launch Party", "Team Offsite"} {
		if _, ok := Insert(db, models.KindEvent, map[string]any{
			"organizer_name": "alice",
			"event_id":       int64(i + 1),
			"title":          title,
			"budget":         1000.0,
			"event_date":     int64(1770000000),
		}); !ok {
			t.Fatalf("Insert(event %q) failed", title)
		}
	}

	// title filter targets a single event
	res, ok := Query(db, models.KindEvent, map[string]any{"title": "Launch Party"})
	if !ok {
		t.Fatal("Query(event by title) found nothing")
	}
	ev, ok := res.(*models.Event)
	if !ok || ev.Title != "Launch Party" {
		t.Errorf("Query(event by title) = %#v, want single Launch Party event", res)
	}

	// organizer filter lists all events
	res, ok = Query(db, models.KindEvent, map[string]any{"organizer_name": "alice"})
	if !ok {
		t.Fatal("Query(event by organizer) found nothing")
	}
	evs := res.([]models.Event)
	if len(evs) != 2 {
		t.Errorf("Query(event by organizer) returned %d events, want 2", len(evs))
	}

	if _, ok := Query(db, models.KindEvent, map[string]any{"title": "Nope"}); ok {
		t.Error("Query(event by title) for absent title reported found")
	}
}

func TestUpdateEvent(t *testing.T) {
	db := setupDB(t)

	Insert(db, models.KindEvent, map[string]any{
		"organizer_name": "alice",
		"event_id":       int64(1),
		"title":          "Launch Party",
		"budget":         1000.0,
		"event_date":     int64(1770000000),
	})

	updated, ok := Update(db, models.KindEvent, map[string]any{
		"organizer_name": "alice",
		"event_id":       int64(1),
		"title":          "Launch Party v2",
		"budget":         2500.0,
		"event_date":     int64(1780000000),
	})
	if !ok {
		t.Fatal("Update(event) failed")
	}
	ev := updated.(*models.Event)
	if ev.Title != "Launch Party v2" || ev.Budget != 2500.0 {
		t.Errorf("Update(event) = %#v, want overwritten title and budget", ev)
	}

	// missing required key resolves no target
	if _, ok := Update(db, models.KindEvent, map[string]any{"title": "whatever"}); ok {
		t.Error("Update(event) without organizer_name reported success")
	}
}

func TestUpdateRSVPMissingKey(t *testing.T) {
	db := setupDB(t)

	Insert(db, models.KindRSVP, map[string]any{
		"event_id": int64(1),
		"username": "bob",
		"title":    "Launch Party",
		"status":   "accepted",
	})

	// omitting username must fail without mutating the record
	if _, ok := Update(db, models.KindRSVP, map[string]any{
		"event_id": int64(1),
		"status":   "declined",
	}); ok {
		t.Fatal("Update(rsvp) without username reported success")
	}

	res, _ := Query(db, models.KindRSVP, map[string]any{"event_id": int64(1), "username": "bob"})
	rs := res.([]models.RSVP)
	if rs[0].Status != models.RSVPAccepted {
		t.Errorf("RSVP status = %q after failed update, want accepted", rs[0].Status)
	}
}

func TestDeleteIdempotence(t *testing.T) {
	db := setupDB(t)

	rec, _ := Insert(db, models.KindRSVP, map[string]any{
		"event_id": int64(1),
		"username": "bob",
		"title":    "Launch Party",
		"status":   "accepted",
	})

	if !Delete(db, rec) {
		t.Fatal("Delete() of existing record failed")
	}
	// second delete reports failure, not a crash
	if Delete(db, rec) {
		t.Error("Delete() of already-deleted record reported success")
	}
	if Delete(db, nil) {
		t.Error("Delete(nil) reported success")
	}
}

func TestGetOrganizer(t *testing.T) {
	db := setupDB(t)

	Insert(db, models.KindOrganizer, map[string]any{
		"organizer_name": "alice",
		"email":          "alice@example.com",
		"password":       "hashed",
	})

	org, err := GetOrganizer(db, "alice")
	if err != nil || org.OrganizerName != "alice" {
		t.Fatalf("GetOrganizer(name) = %v, %v", org, err)
	}

	// an input containing "@" switches to the email lookup
	org, err = GetOrganizer(db, "alice@example.com")
	if err != nil || org.OrganizerName != "alice" {
		t.Fatalf("GetOrganizer(email) = %v, %v", org, err)
	}

	if _, err := GetOrganizer(db, "mallory"); err == nil {
		t.Error("GetOrganizer(absent) error = nil, want error")
	}
}

func TestInsertUnknownKind(t *testing.T) {
	db := setupDB(t)

	if _, ok := Insert(db, models.RecordKind("bogus"), map[string]any{}); ok {
		t.Error("Insert(unknown kind) reported success")
	}
	if _, ok := Query(db, models.RecordKind("bogus"), map[string]any{}); ok {
		t.Error("Query(unknown kind) reported found")
	}
	if _, ok := Update(db, models.RecordKind("bogus"), map[string]any{}); ok {
		t.Error("Update(unknown kind) reported success")
	}
}
