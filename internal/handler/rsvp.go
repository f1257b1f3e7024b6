package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/database"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RSVPHandler serves attendee accept/decline responses.
type RSVPHandler struct {
	DB *gorm.DB
}

func NewRSVPHandler(db *gorm.DB) *RSVPHandler {
	return &RSVPHandler{DB: db}
}

type rsvpReq struct {
	EventID  int64             `json:"event_id" binding:"required"`
	Title    string            `json:"title" binding:"required"`
	Username string            `json:"username" binding:"required"`
	Status   models.RSVPStatus `json:"status" binding:"required"`
}

// Submit records a new RSVP. The duplicate check and the insert are
// separate storage operations; concurrent submissions for the same
// pair can race past the check.
func (h *RSVPHandler) Submit(c *gin.Context) {
	var req rsvpReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		util.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, ok := database.Query(h.DB, models.KindEvent, map[string]any{"title": req.Title}); !ok {
		util.Message(c, http.StatusNotFound, "Event not found")
		return
	}

	if _, ok := database.Query(h.DB, models.KindRSVP, map[string]any{
		"event_id": req.EventID,
		"username": req.Username,
	}); ok {
		util.Message(c, http.StatusBadRequest,
			"You have already submitted an RSVP. Please use the update endpoint to modify your response.")
		return
	}

	if _, ok := database.Insert(h.DB, models.KindRSVP, map[string]any{
		"event_id": req.EventID,
		"title":    req.Title,
		"username": req.Username,
		"status":   string(req.Status),
	}); !ok {
		util.Message(c, http.StatusInternalServerError, "Failed to submit RSVP")
		return
	}

	util.Message(c, http.StatusOK, "RSVP submitted successfully")
}

// GetResponses lists all RSVP responses for an event.
func (h *RSVPHandler) GetResponses(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Query("event_id"), 10, 64)
	if err != nil {
		util.Message(c, http.StatusBadRequest, "event_id is required")
		return
	}

	res, ok := database.Query(h.DB, models.KindRSVP, map[string]any{"event_id": eventID})
	if !ok {
		util.Message(c, http.StatusNotFound, "No RSVPs found for this event")
		return
	}

	util.Respond(c, http.StatusOK, "RSVPs fetched", gin.H{
		"event_id":  eventID,
		"responses": res,
	})
}

// Update overwrites the status of an existing (event, username) RSVP.
func (h *RSVPHandler) Update(c *gin.Context) {
	var req rsvpReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		util.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, ok := database.Query(h.DB, models.KindRSVP, map[string]any{
		"event_id": req.EventID,
		"username": req.Username,
	}); !ok {
		util.Message(c, http.StatusNotFound, "RSVP not found")
		return
	}

	if _, ok := database.Update(h.DB, models.KindRSVP, map[string]any{
		"event_id":   req.EventID,
		"username":   req.Username,
		"status":     string(req.Status),
		"updated_at": time.Now().Unix(),
	}); !ok {
		util.Message(c, http.StatusInternalServerError, "Failed to update RSVP")
		return
	}

	util.Message(c, http.StatusOK, "RSVP updated successfully")
}

// Delete removes an RSVP resolved by the (event_id, username) pair.
func (h *RSVPHandler) Delete(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Query("event_id"), 10, 64)
	username := c.Query("username")
	if err != nil || username == "" {
		util.Message(c, http.StatusBadRequest, "event_id and username are required")
		return
	}

	res, ok := database.Query(h.DB, models.KindRSVP, map[string]any{
		"event_id": eventID,
		"username": username,
	})
	if !ok {
		util.Message(c, http.StatusNotFound, "RSVP not found")
		return
	}

	rsvps, ok := res.([]models.RSVP)
	if !ok || len(rsvps) == 0 {
		util.Message(c, http.StatusNotFound, "RSVP not found")
		return
	}

	if !database.Delete(h.DB, &rsvps[0]) {
		util.Message(c, http.StatusInternalServerError, "Failed to delete RSVP")
		return
	}

	util.Message(c, http.StatusOK, "RSVP deleted successfully")
}
