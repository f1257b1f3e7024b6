package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/database"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/models"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler streams an event's RSVP responses as a CSV or XLSX
// attachment for the organizer.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Event ID", "Username", "Title", "Status", "Created At"}

// ExportResponses handles GET /rsvp/export?event_id=&format=csv|xlsx.
func (h *ExportHandler) ExportResponses(c *gin.Context) {
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
	rsvps, ok := res.([]models.RSVP)
	if !ok {
		util.Message(c, http.StatusInternalServerError, "Error exporting RSVPs")
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.writeXLSX(c, eventID, rsvps)
	case "csv":
		h.writeCSV(c, eventID, rsvps)
	default:
		util.Message(c, http.StatusBadRequest, "format must be csv or xlsx")
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, eventID int64, rsvps []models.RSVP) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"rsvps_event%d_%s.csv\"",
		eventID, time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, r := range rsvps {
		writer.Write([]string{
			strconv.FormatInt(r.EventID, 10),
			r.Username,
			r.Title,
			string(r.Status),
			time.Unix(r.CreatedAt, 0).Format("2006-01-02 15:04:05"),
		})
	}
}

func (h *ExportHandler) writeXLSX(c *gin.Context, eventID int64, rsvps []models.RSVP) {
	f := excelize.NewFile()
	sheetName := "RSVPs"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Message(c, http.StatusInternalServerError, "Error exporting RSVPs")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, r := range rsvps {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.EventID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Username)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(r.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), time.Unix(r.CreatedAt, 0).Format("2006-01-02 15:04:05"))
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"rsvps_event%d_%s.xlsx\"",
		eventID, time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Message(c, http.StatusInternalServerError, "Error exporting RSVPs")
	}
}
