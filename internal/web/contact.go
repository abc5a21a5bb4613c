package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/views"
)

const sessionCookie = "contact_session"

// contactForm is the submitted form body. Absent fields leave the
// controller's value alone.
type contactForm struct {
	Name    *string `form:"name" json:"name"`
	Email   *string `form:"email" json:"email"`
	Message *string `form:"message" json:"message"`
}

// edits lists the fields present in the body.
func (f contactForm) edits() map[contact.Field]string {
	edits := make(map[contact.Field]string, 3)
	for field, v := range map[contact.Field]*string{
		contact.FieldName:    f.Name,
		contact.FieldEmail:   f.Email,
		contact.FieldMessage: f.Message,
	} {
		if v != nil {
			edits[field] = *v
		}
	}
	return edits
}

func (s *Server) setupContactRoutes(r *gin.Engine) {
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact/field", s.handleContactField)
	r.POST("/contact", s.handleContactSubmit)
	r.GET("/contact/banner", s.handleContactBanner)
}

// formFor returns the visitor's controller, opening a session and issuing
// its cookie for first-time visitors. Only write paths call it.
func (s *Server) formFor(c *gin.Context) *contact.Controller {
	id, _ := c.Cookie(sessionCookie)
	ctrl, assigned := s.forms.Acquire(id)
	if assigned != id {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, assigned, 0, "/", "", false, true)
	}
	return ctrl
}

// formView is what read paths render: the session's form if it has one,
// otherwise a blank form. No session is opened.
func (s *Server) formView(c *gin.Context) (contact.State, time.Duration) {
	id, _ := c.Cookie(sessionCookie)
	if ctrl, ok := s.forms.Lookup(id); ok {
		return ctrl.State(), ctrl.ResultTTL()
	}
	ttl := s.cfg.Contact.ResultTTL
	if ttl <= 0 {
		ttl = contact.DefaultResultTTL
	}
	return contact.State{}, ttl
}

func (s *Server) handleContactForm(c *gin.Context) {
	state, ttl := s.formView(c)
	html(c, http.StatusOK, views.ContactForm(state, ttl))
}

func (s *Server) handleContactField(c *gin.Context) {
	var body contactForm
	if err := c.ShouldBind(&body); err != nil {
		c.String(http.StatusBadRequest, "malformed form body")
		return
	}
	form := s.formFor(c)
	for field, value := range body.edits() {
		form.UpdateField(field, value)
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	var body contactForm
	if err := c.ShouldBind(&body); err != nil {
		c.String(http.StatusBadRequest, "malformed form body")
		return
	}
	form := s.formFor(c)

	// Delivery outlives the request: a dropped connection must not turn a
	// sent message into a failure banner. Only the form's Close cancels it.
	ctx := context.WithoutCancel(c.Request.Context())

	status := http.StatusOK
	result, err := form.SubmitWith(ctx, body.edits())
	switch {
	case err == nil:
		s.log.Debug().Bool("success", result.Success).Msg("contact form submitted")
	case errors.Is(err, contact.ErrSendFailed):
		s.log.Warn().Err(err).Msg("contact form delivery failed")
	case errors.Is(err, contact.ErrSubmissionInFlight):
		status = http.StatusConflict
	case errors.Is(err, contact.ErrClosed):
		status = http.StatusGone
	default:
		s.log.Error().Err(err).Msg("contact form submit")
		status = http.StatusInternalServerError
	}

	if !isHTMX(c) && status == http.StatusOK {
		c.Redirect(http.StatusSeeOther, "/#contact")
		return
	}
	html(c, status, views.ContactForm(form.State(), form.ResultTTL()))
}

func (s *Server) handleContactBanner(c *gin.Context) {
	state, ttl := s.formView(c)
	html(c, http.StatusOK, views.Banner(state.Result, ttl))
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
