package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/internal/domain"
	"staybook/internal/pkg/response"
)

// SessionCookie names the cookie holding the booking form session id.
const SessionCookie = "staybook_booking"

type Handler struct {
	store        *Store
	cookieSecure bool
}

func NewHandler(store *Store, cookieSecure bool) *Handler {
	return &Handler{store: store, cookieSecure: cookieSecure}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking", h.ShowForm)
	rg.POST("/booking", h.SubmitForm)
	rg.PATCH("/booking/fields", h.UpdateField)
	rg.POST("/booking/discard", h.Discard)
}

func (h *Handler) session(c *gin.Context) *Form {
	current, _ := c.Cookie(SessionCookie)
	id, form := h.store.GetOrCreate(current)
	if id != current {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, int(h.store.TTL()/time.Second), "/", "", h.cookieSecure, true)
	}
	return form
}

func (h *Handler) render(c *gin.Context, status int, form *Form) {
	c.HTML(status, "booking.html", form.Snapshot())
}

// ShowForm renders the booking form of the caller's session.
func (h *Handler) ShowForm(c *gin.Context) {
	h.render(c, http.StatusOK, h.session(c))
}

// SubmitForm applies the posted fields and submits the form.
func (h *Handler) SubmitForm(c *gin.Context) {
	form := h.session(c)

	var in domain.BookingFields
	if err := c.ShouldBind(&in); err != nil {
		h.render(c, http.StatusBadRequest, form)
		return
	}

	form.SetFields(in)

	err := form.Submit(c.Request.Context())
	switch {
	case err == nil:
		h.render(c, http.StatusOK, form)
	case errors.Is(err, ErrValidation):
		h.render(c, http.StatusUnprocessableEntity, form)
	case errors.Is(err, ErrSubmissionInFlight):
		h.render(c, http.StatusConflict, form)
	case errors.Is(err, ErrFormClosed):
		c.String(http.StatusGone, "Booking session closed")
	default:
		h.render(c, http.StatusBadGateway, form)
	}
}

// UpdateField applies a single keystroke-level edit.
func (h *Handler) UpdateField(c *gin.Context) {
	form := h.session(c)

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	if err := form.Update(req.Name, req.Value); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Unknown field")
		return
	}

	snap := form.Snapshot()
	response.Success(c, http.StatusOK, gin.H{"status": snap.Status})
}

// Discard ends the caller's session.
func (h *Handler) Discard(c *gin.Context) {
	if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
		h.store.Discard(id)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/booking")
}
