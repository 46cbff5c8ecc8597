// Package httpapi is the HTTP adapter. It translates requests into
// use-case calls and renders responses in the client's language.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"cropai/internal/application"
	"cropai/internal/config"
	"cropai/internal/domain/agronomy"
	"cropai/internal/infrastructure/session"
	"cropai/internal/ports/input"
	"cropai/internal/ports/output"
)

// Server owns the gin engine and the dependencies the handlers need.
type Server struct {
	cfg *config.Config
	log *zap.Logger

	accounts    input.AccountUseCase
	fields      input.FieldUseCase
	predictions input.PredictionUseCase
	locales     *application.LocaleService
	sessions    *session.Store
	users       output.UserRepository

	engine *gin.Engine
	srv    *http.Server
}

// Deps bundles the server's collaborators.
type Deps struct {
	Accounts    input.AccountUseCase
	Fields      input.FieldUseCase
	Predictions input.PredictionUseCase
	Locales     *application.LocaleService
	Sessions    *session.Store
	Users       output.UserRepository
}

func NewServer(cfg *config.Config, log *zap.Logger, deps Deps) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:         cfg,
		log:         log,
		accounts:    deps.Accounts,
		fields:      deps.Fields,
		predictions: deps.Predictions,
		locales:     deps.Locales,
		sessions:    deps.Sessions,
		users:       deps.Users,
	}

	registerValidators()

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(log))
	s.engine = engine
	s.routes()

	s.srv = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// registerValidators installs the "crop" rule on gin's shared validator.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("crop", func(fl validator.FieldLevel) bool {
			return agronomy.IsKnownCrop(fl.Field().String())
		})
	}
}

func (s *Server) routes() {
	api := s.engine.Group("/api/v1")
	api.Use(s.WithSession(), s.WithLocale())

	auth := api.Group("/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)
	auth.POST("/logout", s.handleLogout)

	api.GET("/languages", s.handleLanguages)
	api.PUT("/language", s.handleSetLanguage)
	api.GET("/catalog/:code", s.handleCatalog)

	api.POST("/predict", s.handlePredict)
	api.GET("/weather", s.handleWeather)
	api.GET("/market/prices", s.handleMarketPrices)

	private := api.Group("")
	private.Use(s.RequireUser())
	private.GET("/dashboard", s.handleDashboard)
	private.POST("/fields", s.handleAddField)
	private.GET("/fields", s.handleListFields)
}

// Handler exposes the routing tree (used by tests).
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down http server")
	return s.srv.Shutdown(shutdownCtx)
}
