// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity_kit_backend/internal/auth"
	"identity_kit_backend/internal/config"
	"identity_kit_backend/internal/confirmation"
	"identity_kit_backend/internal/metrics"
	"identity_kit_backend/internal/middleware"
	"identity_kit_backend/internal/profile"
	"identity_kit_backend/internal/provider"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	authHandler         *auth.Handler
	profileHandler      *profile.Handler
	confirmationHandler *confirmation.Handler

	// Middleware instances
	authMW      gin.HandlerFunc
	rateLimiter *middleware.RateLimiter
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *auth.Handler,
	profileHandler *profile.Handler,
	confirmationHandler *confirmation.Handler,
	m *metrics.Metrics,
	providerService provider.Service,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware. It answers OPTIONS preflights itself; every other
	// response carries the CORS headers.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(providerService, logger.Named("AuthMiddleware"))
	rateLimiter := middleware.NewRateLimiter(cfg, logger.Named("RateLimiter"))

	// --- Setup Routes ---
	router.GET("/health", healthCheck)

	authGroup := router.Group("/auth", rateLimiter.Middleware())
	authHandler.RegisterRoutes(authGroup)
	profileHandler.RegisterRoutes(authGroup.Group("", authMW))

	eventsGroup := router.Group("/internal/events")
	confirmationHandler.RegisterRoutes(eventsGroup)

	router.GET("/metrics", m.Handler())

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:          httpServer,
		router:              router,
		cfg:                 cfg,
		logger:              logger,
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		confirmationHandler: confirmationHandler,
		authMW:              authMW,
		rateLimiter:         rateLimiter,
	}, nil
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Server is healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Router exposes the gin engine, mainly for tests driving the server with
// httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	s.rateLimiter.Stop()
	return s.httpServer.Shutdown(ctx)
}
