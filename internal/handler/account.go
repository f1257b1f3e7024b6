package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/database"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/middleware"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/session"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountHandler serves organizer signup, login, logout and the
// logged-state check.
type AccountHandler struct {
	DB         *gorm.DB
	CookieName string
	BcryptCost int
}

func NewAccountHandler(db *gorm.DB, cookieName string, bcryptCost int) *AccountHandler {
	return &AccountHandler{
		DB:         db,
		CookieName: cookieName,
		BcryptCost: bcryptCost,
	}
}

type signupReq struct {
	OrganizerName string `json:"organizer_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Contact       string `json:"contact" binding:"required"`
	Name          string `json:"name"`
}

type loginReq struct {
	Data      string `json:"data" binding:"required"`
	Password  string `json:"password" binding:"required"`
	KeepLogin bool   `json:"keepLogin"`
}

// Signup registers a new organizer account and records the signup
// audit row.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	organizerName := strings.TrimSpace(req.OrganizerName)
	if organizerName == "" {
		util.Message(c, http.StatusForbidden, "Invalid organizer name")
		return
	}
	if err := util.ValidateOrganizerName(organizerName); err != nil {
		util.Message(c, http.StatusForbidden, "Only alphanumeric characters are allowed")
		return
	}

	if _, err := database.GetOrganizer(h.DB, organizerName); err == nil {
		util.Message(c, http.StatusForbidden, "Username not available.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		util.Message(c, http.StatusInternalServerError, "Error during organizer signup process, please try again later!")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "Error during organizer signup process, please try again later!")
		return
	}

	meta := session.ExtractClientMeta(c)
	rec, ok := database.Insert(h.DB, models.KindOrganizer, map[string]any{
		"organizer_name": organizerName,
		"email":          strings.ToLower(req.Email),
		"password":       hash,
		"name":           strings.TrimSpace(req.Name),
		"contact":        util.NormalizeContact(req.Contact),
	})
	org, _ := rec.(*models.Organizer)
	if !ok || org == nil {
		util.Message(c, http.StatusInternalServerError, "Could not create organizer account, please try again")
		return
	}

	// audit row is best effort; the account already exists
	if _, ok := database.Insert(h.DB, models.KindOrganizerMeta, map[string]any{
		"organizer_name": organizerName,
		"reason":         string(models.ReasonSignup),
		"ip":             meta.IP,
		"os":             meta.OS,
	}); !ok {
		slog.Error("signup meta insert failed", "organizer", organizerName)
	}

	util.Respond(c, http.StatusCreated, "Organizer account created successfully!", gin.H{
		"organizer_name": org.OrganizerName,
		"email":          org.Email,
		"contact":        org.Contact,
		"name":           org.Name,
		"created_at":     org.CreatedAt,
	})
}

// Login verifies credentials, creates a session and issues the session
// cookie.
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	org, err := database.GetOrganizer(h.DB, strings.ToLower(req.Data))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Message(c, http.StatusUnauthorized, "Organizer account not found")
		} else {
			util.Message(c, http.StatusUnauthorized, "Login Failed")
		}
		return
	}

	if !util.CheckPassword(req.Password, org.Password) {
		util.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	meta := session.ExtractClientMeta(c)
	s, ok := session.Create(h.DB, org.OrganizerName, meta, req.KeepLogin)
	if !ok {
		util.Message(c, http.StatusInternalServerError, "Login Failed")
		return
	}

	if _, ok := database.Insert(h.DB, models.KindOrganizerMeta, map[string]any{
		"organizer_name": org.OrganizerName,
		"reason":         string(models.ReasonLogin),
		"ip":             meta.IP,
		"os":             meta.OS,
	}); !ok {
		slog.Error("login meta insert failed", "organizer", org.OrganizerName)
	}

	session.SetCookie(c, h.CookieName, s.PK, session.MaxAge(req.KeepLogin))
	util.Message(c, http.StatusOK, "Organizer logged in successfully")
}

// Logout deletes the bound session and clears the cookie.
func (h *AccountHandler) Logout(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok || !session.Delete(h.DB, s) {
		util.Message(c, http.StatusUnauthorized, "Logout Failed")
		return
	}
	session.ClearCookie(c, h.CookieName)
	util.Message(c, http.StatusOK, "logged out successfully")
}

// CheckAuth reports whether the bound session still resolves to an
// organizer account.
func (h *AccountHandler) CheckAuth(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusBadRequest, "Session invalid")
		return
	}

	org, err := database.GetOrganizer(h.DB, s.OrganizerName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Message(c, http.StatusBadRequest, "Session invalid")
		} else {
			util.Message(c, http.StatusInternalServerError, "Failed to check user auth status, please try again later!")
		}
		return
	}

	util.Respond(c, http.StatusOK, "Session valid.", gin.H{
		"email":          org.Email,
		"organizer name": org.OrganizerName,
		"contact number": org.Contact,
	})
}
