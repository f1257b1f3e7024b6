package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/config"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/database"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const testCookieName = "organizer_session"

func setupGate(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Init(config.DatabaseConfig{Path: dsn})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}

	r := gin.New()
	r.GET("/protected", AuthRequired(db, testCookieName), func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no session bound"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"organizer": s.OrganizerName})
	})
	return db, r
}

func doProtected(t *testing.T, r *gin.Engine, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, body
}

func TestGateRejectsMissingToken(t *testing.T) {
	_, r := setupGate(t)

	w, body := doProtected(t, r, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if body["message"] != MsgTokenMissing {
		t.Errorf("message = %q, want %q", body["message"], MsgTokenMissing)
	}
}

func TestGateRejectsUnknownToken(t *testing.T) {
	_, r := setupGate(t)

	w, body := doProtected(t, r, "not-a-real-token")
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if body["message"] != MsgSessionInvalid {
		t.Errorf("message = %q, want %q", body["message"], MsgSessionInvalid)
	}
}

func TestGateDeletesExpiredSession(t *testing.T) {
	db, r := setupGate(t)

	now := time.Now().Unix()
	rec, ok := database.Insert(db, models.KindOrganizerSession, map[string]any{
		"pk":             "expired-token",
		"organizer_name": "alice",
		"created_at":     now - 400000,
		"expired_at":     now - 76000,
	})
	if !ok || rec == nil {
		t.Fatal("seed expired session failed")
	}

	var before int64
	db.Model(&models.OrganizerSession{}).Count(&before)

	w, body := doProtected(t, r, "expired-token")
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	// expiry is indistinguishable from an unknown session
	if body["message"] != MsgSessionInvalid {
		t.Errorf("message = %q, want %q", body["message"], MsgSessionInvalid)
	}

	// lazy cleanup removed the record
	var after int64
	db.Model(&models.OrganizerSession{}).Count(&after)
	if after != before-1 {
		t.Errorf("session count = %d after expiry, want %d", after, before-1)
	}
	if _, err := session.FindByToken(db, "expired-token"); err == nil {
		t.Error("expired session still resolvable after gate rejection")
	}

	// second use of the same token also fails
	w, _ = doProtected(t, r, "expired-token")
	if w.Code != http.StatusForbidden {
		t.Errorf("second use status = %d, want 403", w.Code)
	}
}

func TestGateBindsValidSession(t *testing.T) {
	db, r := setupGate(t)

	s, ok := session.Create(db, "alice", session.ClientMeta{IP: "127.0.0.1"}, false)
	if !ok {
		t.Fatal("create session failed")
	}

	w, body := doProtected(t, r, s.PK)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %v)", w.Code, body)
	}
	if body["organizer"] != "alice" {
		t.Errorf("bound organizer = %q, want alice", body["organizer"])
	}

	// no sliding expiry: the window is unchanged by use
	after, err := session.FindByToken(db, s.PK)
	if err != nil {
		t.Fatalf("session vanished after valid use: %v", err)
	}
	if after.ExpiredAt != s.ExpiredAt {
		t.Errorf("expiry changed from %d to %d on use", s.ExpiredAt, after.ExpiredAt)
	}
}
