package handler

import (
	"net/http"
	"strings"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/database"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/middleware"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EventHandler serves event CRUD for the logged-in organizer.
type EventHandler struct {
	DB *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{DB: db}
}

type eventReq struct {
	OrganizerName string  `json:"organizer_name" binding:"required"`
	EventID       int64   `json:"event_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Budget        float64 `json:"budget"`
	EventDate     string  `json:"event_date" binding:"required"` // d/m/Y
}

// CreateEvent inserts a new event owned by the logged-in organizer.
// The ownership check runs before any write.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusBadRequest, "User not logged in")
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if s.OrganizerName != req.OrganizerName {
		util.Message(c, http.StatusForbidden, "organizer name invalid")
		return
	}

	eventDate, err := util.ParseEventDate(req.EventDate)
	if err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid event date, expected d/m/Y")
		return
	}

	rec, ok := database.Insert(h.DB, models.KindEvent, map[string]any{
		"event_id":       req.EventID,
		"organizer_name": strings.ToLower(req.OrganizerName),
		"title":          req.Title,
		"description":    req.Description,
		"budget":         req.Budget,
		"event_date":     eventDate,
	})
	if !ok {
		util.Message(c, http.StatusInternalServerError, "Failed to insert event")
		return
	}

	util.Respond(c, http.StatusOK, "event created", rec)
}

// GetEvent lists all events for an organizer name.
func (h *EventHandler) GetEvent(c *gin.Context) {
	organizerName := c.Query("username")
	if organizerName == "" {
		util.Message(c, http.StatusBadRequest, "username is required")
		return
	}

	res, ok := database.Query(h.DB, models.KindEvent, map[string]any{"organizer_name": organizerName})
	if !ok {
		util.Respond(c, http.StatusNotFound, "No events found", []any{})
		return
	}
	util.Respond(c, http.StatusOK, "events fetched", res)
}

// UpdateEvent overwrites an existing event after the ownership check.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusBadRequest, "User not logged in")
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if s.OrganizerName != req.OrganizerName {
		util.Message(c, http.StatusForbidden, "Username does not match")
		return
	}

	if _, ok := database.Query(h.DB, models.KindEvent, map[string]any{"organizer_name": req.OrganizerName}); !ok {
		util.Message(c, http.StatusNotFound, "Event not found")
		return
	}

	eventDate, err := util.ParseEventDate(req.EventDate)
	if err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid event date, expected d/m/Y")
		return
	}

	updated, ok := database.Update(h.DB, models.KindEvent, map[string]any{
		"organizer_name": req.OrganizerName,
		"event_id":       req.EventID,
		"title":          req.Title,
		"description":    req.Description,
		"budget":         req.Budget,
		"event_date":     eventDate,
	})
	if !ok {
		util.Message(c, http.StatusInternalServerError, "Error updating event")
		return
	}

	util.Respond(c, http.StatusOK, "Updated", updated)
}

// DeleteEvent removes an event resolved by title, after the ownership
// check.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusBadRequest, "User not logged in")
		return
	}

	organizerName := c.Query("organizer_name")
	title := c.Query("title")
	if organizerName == "" || title == "" {
		util.Message(c, http.StatusBadRequest, "organizer_name and title are required")
		return
	}

	if s.OrganizerName != organizerName {
		util.Message(c, http.StatusForbidden, "Username does not match")
		return
	}

	res, ok := database.Query(h.DB, models.KindEvent, map[string]any{"title": title})
	if !ok {
		util.Message(c, http.StatusNotFound, "Event not found")
		return
	}

	if !database.Delete(h.DB, res) {
		util.Message(c, http.StatusInternalServerError, "Error deleting event")
		return
	}

	util.Message(c, http.StatusOK, "Event deleted")
}
