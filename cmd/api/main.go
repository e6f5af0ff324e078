package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/Aroool/Ai-meeting-summariser/pkg/validator"

	_ "github.com/Aroool/Ai-meeting-summariser/docs"
	"github.com/Aroool/Ai-meeting-summariser/internal/adapter/handler"
	"github.com/Aroool/Ai-meeting-summariser/internal/adapter/repository"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/cache"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/database"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/email"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/external/oauth"
	httpmw "github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/http/middleware"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/storage"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/auth"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/calendar"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/dashboard"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/drive"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/event"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/meeting"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/upcoming"
	"github.com/Aroool/Ai-meeting-summariser/pkg/config"
	"github.com/Aroool/Ai-meeting-summariser/pkg/jwt"
)

// @title           Meeting Summariser API
// @version         1.0
// @description     API for meeting summarization with schedule suggestion extraction, offline events, and Google Calendar/Drive integration

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize KV store; fall back to in-memory when Redis is unreachable
	log.Println("📦 Connecting to Redis...")
	var kv cache.KV
	redisKV, err := cache.NewRedisKV(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), using in-memory KV store", err)
		kv = cache.NewMemoryKV()
	} else {
		defer redisKV.Close()
		kv = redisKV
	}

	// Initialize object storage for transcript and summary archives
	log.Println("🗄️  Connecting to object storage...")
	store, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize OAuth provider
	log.Println("🔐 Initializing OAuth provider...")
	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		cfg.OAuth.Google.RedirectURL,
	)

	// Initialize state manager for CSRF protection
	stateManager := oauth.NewStateManager(cache.NewMemoryStore())

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, sessionRepo, googleProvider, stateManager, jwtManager)
	meetingService := meeting.NewService(meetingRepo, transcriptRepo, summaryRepo, store, logger)
	mailer := email.NewSMTPSender(&cfg.SMTP, logger)
	eventService := event.NewService(eventRepo, mailer, logger)
	engine := upcoming.NewEngine(upcoming.Options{
		BareHourPM:       cfg.Dashboard.BareHourPM,
		BareHourPMCutoff: cfg.Dashboard.BareHourPMCutoff,
		MaxPerMeeting:    cfg.Dashboard.MaxPerMeeting,
	})
	dashboardService := dashboard.NewService(summaryRepo, kv, engine, logger)
	calendarService := calendar.NewService(userRepo, googleProvider, logger)
	driveService := drive.NewService(userRepo, meetingRepo, meetingService, googleProvider, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	meetingHandler := handler.NewMeeting(meetingService, logger)
	eventHandler := handler.NewEvent(eventService, logger)
	dashboardHandler := handler.NewDashboard(dashboardService, logger)
	calendarHandler := handler.NewCalendar(calendarService, logger)
	driveHandler := handler.NewDrive(driveService, logger)
	archiveHandler := handler.NewArchive(meetingService, store, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(authService)

	router := handler.NewRouter(
		cfg,
		authHandler,
		meetingHandler,
		eventHandler,
		dashboardHandler,
		calendarHandler,
		driveHandler,
		archiveHandler,
		authEchoMW,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
