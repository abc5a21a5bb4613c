// Package web serves the portfolio: the landing page, the HTMX contact form
// endpoints, and the admin dashboard backed by the visitor log.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/views"
	"github.com/Zachkp/portfolio/internal/visitors"
)

// Server owns the gin engine and the per-visitor contact forms.
type Server struct {
	cfg        *config.Config
	log        zerolog.Logger
	site       content.Site
	forms      *contact.Registry
	store      *visitors.Store
	tracker    *visitors.Tracker
	adminToken string
	engine     *gin.Engine
	now        func() time.Time
}

// New wires routes. store may be nil when visitor tracking is disabled.
func New(cfg *config.Config, log zerolog.Logger, forms *contact.Registry, store *visitors.Store) (*Server, error) {
	token, err := visitors.RandomToken()
	if err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	s := &Server{
		cfg:        cfg,
		log:        log,
		site:       content.Default(),
		forms:      forms,
		store:      store,
		adminToken: token,
		now:        time.Now,
	}
	if store != nil {
		s.tracker = visitors.NewTracker(store)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	if s.tracker != nil {
		r.Use(visitorTracking(s.tracker))
	}

	r.Static("/images", cfg.Server.ImagesDir)
	r.Static("/static", cfg.Server.StaticDir)

	r.GET("/", s.handleHome)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/work-content", func(c *gin.Context) {
		html(c, http.StatusOK, views.Timeline(s.site.Work))
	})
	r.GET("/education-content", func(c *gin.Context) {
		html(c, http.StatusOK, views.Timeline(s.site.Education))
	})
	s.setupContactRoutes(r)
	s.setupAdminRoutes(r)

	s.engine = r

	log.Info().Msg("admin access available at /admin/login")
	if cfg.Server.Mode == gin.DebugMode && cfg.UsingDefaultAdmin() {
		log.Warn().Msg("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully and tears
// down every open contact form.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	bg, stopBackground := context.WithCancel(ctx)
	defer stopBackground()
	go s.forms.Run(bg, s.cfg.Contact.SweepInterval)
	if s.tracker != nil && s.cfg.Visitors.Retention > 0 {
		go s.tracker.RunCleanup(bg, s.cfg.Visitors.Retention)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if s.tracker != nil {
		s.tracker.Wait()
	}
	return nil
}

func (s *Server) handleHome(c *gin.Context) {
	state, ttl := s.formView(c)
	html(c, http.StatusOK, views.Page(s.site, state, ttl))
}
