package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/discount-form/internal/api/handlers"
	"github.com/eshaffer321/discount-form/internal/api/middleware"
	"github.com/eshaffer321/discount-form/internal/domain/amount"
	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
	Locale         string
	Title          string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		Locale:         "id-ID",
		Title:          "Discount Splitter",
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
	renderer   *worksheet.Renderer
	formatter  *amount.Formatter
}

// NewServer creates a new API server.
func NewServer(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	formatter := amount.NewFormatterFromString(cfg.Locale)
	if !amount.GroupsWithPeriod(formatter.Tag()) {
		logger.Warn("locale does not group with periods, amounts use Indonesian grouping",
			"locale", formatter.Tag().String())
	}

	s := &Server{
		config:    cfg,
		router:    gin.New(),
		logger:    logger,
		formatter: formatter,
		renderer:  worksheet.NewRenderer(formatter),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = s.config.AllowedOrigins
	s.router.Use(middleware.CORS(corsConfig))

	// Request logging
	s.router.Use(middleware.Logging(s.logger, "/health"))
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.router.GET("/health", healthHandler.Get)

	// HTML form
	base, _ := s.formatter.Tag().Base()
	pageHandler := handlers.NewPageHandler(s.renderer, s.config.Title, base.String(), s.logger)
	s.router.GET("/", pageHandler.Show)
	s.router.POST("/", pageHandler.Submit)

	api := s.router.Group("/api")
	{
		worksheetHandler := handlers.NewWorksheetHandler(s.renderer, s.logger)
		api.POST("/worksheet/events", worksheetHandler.Events)
		api.POST("/worksheet/render", worksheetHandler.Render)
		api.GET("/keys/:key", worksheetHandler.Key)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr, "locale", s.formatter.Tag().String())

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the http handler for testing.
func (s *Server) Router() http.Handler {
	return s.router
}
