package property

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staybook/internal/modules/review"
	"staybook/internal/pkg/response"
)

type Handler struct {
	svc     *Service
	reviews ReviewRenderer
}

func NewHandler(svc *Service, reviews ReviewRenderer) *Handler {
	return &Handler{svc: svc, reviews: reviews}
}

func (h *Handler) RegisterRoutes(pages, api *gin.RouterGroup) {
	if pages != nil {
		pages.GET("/properties", h.Index)
		pages.GET("/properties/:id", h.Show)
	}
	if api != nil {
		api.GET("/properties", h.IndexJSON)
		api.GET("/properties/:id", h.ShowJSON)
	}
}

type indexPage struct {
	Items    []DetailView
	Page     int
	PrevPage int
	NextPage int
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Index renders one page of the property catalog.
func (h *Handler) Index(c *gin.Context) {
	page := pageParam(c)
	items, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		log.Printf("property_list_error page=%d error=%q", page, err.Error())
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}

	view := indexPage{Page: page, Items: make([]DetailView, 0, len(items))}
	for _, p := range items {
		view.Items = append(view.Items, NewDetailView(p))
	}
	if page > 1 {
		view.PrevPage = page - 1
	}
	if len(items) == PageSize {
		view.NextPage = page + 1
	}

	c.HTML(http.StatusOK, "properties.html", view)
}

// IndexJSON returns one page of raw property records.
func (h *Handler) IndexJSON(c *gin.Context) {
	page := pageParam(c)
	items, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"page":  page,
	})
}

type detailPage struct {
	Detail  DetailView
	Reviews review.View
}

// Show renders the property detail page with its review section.
func (h *Handler) Show(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidID):
			c.String(http.StatusNotFound, "Property not found")
		default:
			log.Printf("property_load_error id=%s error=%q", c.Param("id"), err.Error())
			c.String(http.StatusInternalServerError, "Internal error")
		}
		return
	}

	c.HTML(http.StatusOK, "property.html", detailPage{
		Detail:  NewDetailView(*p),
		Reviews: h.reviews.Render(c.Request.Context(), p.ID, c.GetHeader("Accept-Language")),
	})
}

// ShowJSON returns the raw property record.
func (h *Handler) ShowJSON(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidID, "Invalid property ID")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Property not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}
