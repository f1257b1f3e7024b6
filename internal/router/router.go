package router

import (
	"time"

	"github.com/iamrahulroyy/Event-Management-Backend/internal/config"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/handler"
	"github.com/iamrahulroyy/Event-Management-Backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, middleware stack and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// credentialed cross-origin requests from any origin, so the
	// session cookie travels with browser clients
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.AuthRequired(db, cfg.Session.CookieName)

	accountHandler := handler.NewAccountHandler(db, cfg.Session.CookieName, cfg.Security.BcryptCost)
	organizer := r.Group("/organizer")
	organizer.Use(middleware.RateLimit(cfg.Security.AuthRateLimit))
	organizer.POST("/signup", accountHandler.Signup)
	organizer.POST("/login", accountHandler.Login)
	organizer.POST("/logout", auth, accountHandler.Logout)
	organizer.GET("/auth", auth, accountHandler.CheckAuth)

	eventHandler := handler.NewEventHandler(db)
	events := r.Group("/events", auth)
	events.POST("/create_event", eventHandler.CreateEvent)
	events.GET("/get_event", eventHandler.GetEvent)
	events.POST("/update_event", eventHandler.UpdateEvent)
	events.DELETE("/delete_event", eventHandler.DeleteEvent)

	rsvpHandler := handler.NewRSVPHandler(db)
	exportHandler := handler.NewExportHandler(db)
	rsvp := r.Group("/rsvp")
	rsvp.POST("/submit", rsvpHandler.Submit)
	rsvp.PUT("/update", rsvpHandler.Update)
	rsvp.GET("/get_responses", auth, rsvpHandler.GetResponses)
	rsvp.DELETE("/delete", auth, rsvpHandler.Delete)
	rsvp.GET("/export", auth, exportHandler.ExportResponses)

	return r
}
