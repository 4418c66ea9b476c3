package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/remindly/remindly/engine/extract"
	extractrouter "github.com/remindly/remindly/engine/extract/router"
	"github.com/remindly/remindly/engine/infra/monitoring"
	"github.com/remindly/remindly/engine/integration/calendar"
	"github.com/remindly/remindly/engine/integration/push"
	"github.com/remindly/remindly/engine/llm"
	notifyrouter "github.com/remindly/remindly/engine/notify/router"
	"github.com/remindly/remindly/engine/ocr"
	"github.com/remindly/remindly/engine/suggest"
	suggestrouter "github.com/remindly/remindly/engine/suggest/router"
	taskrouter "github.com/remindly/remindly/engine/task/router"
	"github.com/remindly/remindly/engine/task/uc"
	"github.com/remindly/remindly/pkg/config"
	"github.com/remindly/remindly/pkg/logger"
)

const (
	maxRequestBody  = 10 << 20 // screenshots arrive base64-encoded
	shutdownTimeout = 10 * time.Second
)

// Dependencies are the collaborators the HTTP surface is wired with.
// OCR, Push and Calendar are nil when their integrations are disabled.
type Dependencies struct {
	Config      *config.Config
	Log         logger.Logger
	Tasks       *uc.Factory
	LLM         llm.Client
	OCR         ocr.Client
	Push        *push.Sender
	Calendar    *calendar.Client
	Monitoring  *monitoring.Service
	StoreHealth func(context.Context) error
}

// Server hosts the HTTP API.
type Server struct {
	cfg    *config.Config
	log    logger.Logger
	engine *gin.Engine
	deps   *Dependencies
}

// New builds the gin engine, wires middleware and registers every route.
func New(deps *Dependencies) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(LoggerMiddleware(deps.Log))
	engine.Use(CORSMiddleware(deps.Config.Server.CORSAllowedOrigins))
	engine.Use(sizeLimit(maxRequestBody))
	if deps.Monitoring != nil {
		engine.Use(deps.Monitoring.GinMiddleware())
	}

	s := &Server{cfg: deps.Config, log: deps.Log, engine: engine, deps: deps}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	model := s.cfg.Groq.Model
	extractor := extract.NewService(s.deps.LLM, model)
	synthesizer := suggest.NewSynthesizer(s.deps.LLM, model)

	taskrouter.RegisterRoutes(s.engine, s.deps.Tasks)
	extractrouter.RegisterRoutes(s.engine, s.deps.LLM, extractor, s.deps.OCR, s.deps.Tasks, s.deps.Calendar, model)
	notifyrouter.RegisterRoutes(s.engine, s.deps.Tasks, s.deps.Push)
	suggestrouter.RegisterRoutes(s.engine, s.deps.Tasks, synthesizer)

	s.engine.GET("/healthz", s.health)
	if s.deps.Monitoring != nil && s.deps.Monitoring.IsInitialized() {
		s.engine.GET("/metrics", gin.WrapH(s.deps.Monitoring.ExporterHandler()))
	}
	if s.deps.Calendar != nil {
		s.engine.GET("/auth/google", s.googleAuth)
		s.engine.GET("/auth/google/callback", s.googleCallback)
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: s.engine}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	s.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	if s.deps.StoreHealth != nil {
		if err := s.deps.StoreHealth(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// googleAuth starts the Calendar OAuth flow by redirecting the user to
// the Google consent page.
func (s *Server) googleAuth(c *gin.Context) {
	c.Redirect(http.StatusFound, s.deps.Calendar.AuthURL("remindly"))
}

// googleCallback completes the Calendar OAuth flow. The calendar client
// retains the token for the process lifetime and syncs newly extracted
// tasks from then on.
func (s *Server) googleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}
	if _, err := s.deps.Calendar.Exchange(ctx, code); err != nil {
		logger.FromContext(ctx).Error("Google OAuth exchange failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.FromContext(ctx).Info("Google Calendar authorized")
	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar connected"})
}
