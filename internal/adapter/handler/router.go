package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Aroool/Ai-meeting-summariser/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authHandler      *Auth
	meetingHandler   *Meeting
	eventHandler     *Event
	dashboardHandler *Dashboard
	calendarHandler  *Calendar
	driveHandler     *Drive
	archiveHandler   *Archive
	authMW           echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	meetingHandler *Meeting,
	eventHandler *Event,
	dashboardHandler *Dashboard,
	calendarHandler *Calendar,
	driveHandler *Drive,
	archiveHandler *Archive,
	authMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:              cfg,
		authHandler:      authHandler,
		meetingHandler:   meetingHandler,
		eventHandler:     eventHandler,
		dashboardHandler: dashboardHandler,
		calendarHandler:  calendarHandler,
		driveHandler:     driveHandler,
		archiveHandler:   archiveHandler,
		authMW:           authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupEventRoutes(v1)
	rt.setupDashboardRoutes(v1)
	rt.setupCalendarRoutes(v1)
	rt.setupDriveRoutes(v1)
	rt.setupArchiveRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)

	authGroup.POST("/logout-all", rt.authHandler.LogoutAll, rt.authMW)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMW)
	authGroup.GET("/google/status", rt.authHandler.GoogleStatus, rt.authMW)
}

// setupMeetingRoutes configures meeting, transcript and summary routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", rt.authMW)

	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
	meetingGroup.PUT("/:id/transcript", rt.meetingHandler.AttachTranscript)
	meetingGroup.GET("/:id/transcript", rt.meetingHandler.GetTranscript)
	meetingGroup.PUT("/:id/summary", rt.meetingHandler.IngestSummary)
	meetingGroup.GET("/:id/summary", rt.meetingHandler.GetSummary)
	meetingGroup.GET("/:id/transcript/download", rt.archiveHandler.TranscriptURL)
}

// setupEventRoutes configures offline event routes
func (rt *Router) setupEventRoutes(g *echo.Group) {
	eventGroup := g.Group("/events", rt.authMW)

	eventGroup.POST("", rt.eventHandler.Create)
	eventGroup.GET("", rt.eventHandler.List)
	eventGroup.GET("/:id", rt.eventHandler.Get)
	eventGroup.PATCH("/:id", rt.eventHandler.Update)
	eventGroup.DELETE("/:id", rt.eventHandler.Delete)
	eventGroup.POST("/:id/send-email", rt.eventHandler.SendEmail)
}

// setupDashboardRoutes configures schedule suggestion and notes routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	dashboardGroup := g.Group("/dashboard", rt.authMW)

	dashboardGroup.GET("/upcoming", rt.dashboardHandler.Upcoming)
	dashboardGroup.POST("/upcoming/consume", rt.dashboardHandler.Consume)
	dashboardGroup.GET("/notes", rt.dashboardHandler.Notes)
	dashboardGroup.PUT("/notes", rt.dashboardHandler.SaveNotes)
}

// setupCalendarRoutes configures Google Calendar routes
func (rt *Router) setupCalendarRoutes(g *echo.Group) {
	calendarGroup := g.Group("/calendar", rt.authMW)

	calendarGroup.GET("/events", rt.calendarHandler.ListEvents)
	calendarGroup.POST("/events", rt.calendarHandler.CreateEvent)
}

// setupDriveRoutes configures Google Drive backfill routes
func (rt *Router) setupDriveRoutes(g *echo.Group) {
	driveGroup := g.Group("/drive", rt.authMW)

	driveGroup.GET("/files", rt.driveHandler.Backfill)
	driveGroup.GET("/files/:id/preview", rt.driveHandler.Preview)
	driveGroup.POST("/attach", rt.driveHandler.Attach)
}

// setupArchiveRoutes configures archived object routes
func (rt *Router) setupArchiveRoutes(g *echo.Group) {
	archiveGroup := g.Group("/archive", rt.authMW)

	archiveGroup.GET("/files", rt.archiveHandler.ListFiles)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
