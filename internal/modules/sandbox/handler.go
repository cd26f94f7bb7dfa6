package sandbox

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
	"staybook/internal/pkg/validator"
)

// IdempotencyHeader must match the header the storefront client sends.
const IdempotencyHeader = "Idempotency-Key"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/:id/reviews", h.ListReviews)
	rg.POST("/bookings", h.CreateBooking)
}

// ListReviews returns the bare review array, without the success envelope.
func (h *Handler) ListReviews(c *gin.Context) {
	items, err := h.svc.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidID, "Invalid property ID")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal error")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	if fieldErrs := validator.Validate(&req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid booking", fieldErrs)
		return
	}

	b, created, err := h.svc.CreateBooking(c.Request.Context(), req.Fields(), c.GetHeader(IdempotencyHeader))
	if err != nil {
		if errors.Is(err, ErrConflict) {
			response.Error(c, http.StatusConflict, response.CodeConflict, "Duplicate booking request")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create booking")
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
		log.Printf("sandbox_booking_replay booking_id=%d request_id=%s", b.ID, c.GetHeader(IdempotencyHeader))
	}

	response.Success(c, status, gin.H{
		"booking": gin.H{
			"id":         b.ID,
			"card_last4": b.CardLast4,
		},
	})
}
