package review

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/:id/reviews", h.Section)
}

// Section renders the review section fragment of a property.
// A failed fetch still renders 200; the fragment carries the failure text.
func (h *Handler) Section(c *gin.Context) {
	view := h.svc.Render(c.Request.Context(), c.Param("id"), c.GetHeader("Accept-Language"))
	c.HTML(http.StatusOK, "reviews.html", view)
}
