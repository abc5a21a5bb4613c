package web

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/views"
	"github.com/Zachkp/portfolio/internal/visitors"
)

const (
	adminCookie       = "admin_token"
	visitorsPageLimit = 200
)

// adminAuth redirects to the login page unless the admin cookie matches.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) clientHash(c *gin.Context) string {
	return visitors.HashIP(c.ClientIP(), s.adminToken)
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		html(c, http.StatusOK, views.Privacy())
	})

	r.GET("/admin/login", func(c *gin.Context) {
		html(c, http.StatusOK, views.AdminLogin(""))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if equal(username, s.cfg.Admin.Username) && equal(password, s.cfg.Admin.Password) {
			c.SetSameSite(http.SameSiteStrictMode)
			c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
			s.log.Info().Str("client", s.clientHash(c)).Msg("admin login successful")
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		s.log.Warn().Str("client", s.clientHash(c)).Msg("failed admin login attempt")
		html(c, http.StatusUnauthorized, views.AdminLogin("Invalid credentials"))
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info().Str("client", s.clientHash(c)).Msg("admin logout")
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.stats(c)
		if err != nil {
			s.log.Error().Err(err).Msg("error loading admin stats")
			c.String(http.StatusInternalServerError, "Failed to load statistics")
			return
		}
		html(c, http.StatusOK, views.AdminDashboard(stats, s.forms.Len()))
	})

	admin.GET("/visitors", func(c *gin.Context) {
		var visits []visitors.Visit
		if s.store != nil {
			var err error
			visits, err = s.store.Recent(c.Request.Context(), visitorsPageLimit)
			if err != nil {
				s.log.Error().Err(err).Msg("error loading visitors")
				c.String(http.StatusInternalServerError, "Failed to load visitors")
				return
			}
		}
		html(c, http.StatusOK, views.AdminVisitors(visits))
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.stats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.stats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info().Str("client", s.clientHash(c)).Msg("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusOK, gin.H{"removed": 0})
			return
		}
		removed, err := s.store.Cleanup(c.Request.Context(), s.now().Add(-s.retention()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}

// stats returns empty figures when tracking is off.
func (s *Server) stats(c *gin.Context) (*visitors.Stats, error) {
	if s.store == nil {
		return &visitors.Stats{}, nil
	}
	return s.store.Stats(c.Request.Context(), s.now())
}

func (s *Server) retention() time.Duration {
	if s.cfg.Visitors.Retention > 0 {
		return s.cfg.Visitors.Retention
	}
	return 365 * 24 * time.Hour
}
