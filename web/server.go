package web

import (
	"context"
	"fmt"
	"net/http"

	"member-qa/config"
	"member-qa/qa"
	"member-qa/web/handlers"
	"member-qa/web/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	engine *qa.Engine
	logger *zap.Logger
	config *config.Config
}

// NewServer wires the HTTP surface around the QA engine. The engine may be
// nil when startup initialization failed; the handlers then answer 503.
func NewServer(engine *qa.Engine, logger *zap.Logger, cfg *config.Config) *Server {
	// Set Gin mode based on environment
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic in request handler", zap.Any("panic", recovered))
		resp := gin.H{"error": "Internal server error"}
		if cfg.Debug {
			resp["details"] = fmt.Sprintf("%v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	}))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	server := &Server{
		router: router,
		engine: engine,
		logger: logger,
		config: cfg,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	qaHandler := handlers.NewQAHandler(s.engine, s.logger)

	s.router.GET("/", qaHandler.Home)
	s.router.GET("/health", qaHandler.Health)
	s.router.GET("/stats", qaHandler.Stats)
	s.router.POST("/ask", qaHandler.Ask)

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
