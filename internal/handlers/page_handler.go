package handlers

import (
	"net/http"

	"car_rental/internal/flash"
	"car_rental/internal/services"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the index, the list pages and the add forms.
type PageHandler struct {
	responder
	lists services.ListService
}

func NewPageHandler(lists services.ListService, flashes flash.Store) *PageHandler {
	return &PageHandler{responder: responder{flashes: flashes}, lists: lists}
}

func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", gin.H{"Title": "Wypożyczalnia", "Views": services.Views()})
}

// List returns the handler rendering view's list page.
func (h *PageHandler) List(view services.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := h.lists.List(c.Request.Context(), view)
		if err != nil {
			h.fail(c, http.StatusInternalServerError, err)
			return
		}
		h.render(c, http.StatusOK, "list.html", gin.H{
			"Title":   listing.Title,
			"Listing": listing,
			"Views":   services.Views(),
		})
	}
}

// Data renders the add form named by the context parameter, with the
// related rows its selects offer.
func (h *PageHandler) Data(c *gin.Context) {
	name := c.PostForm("context")
	if name == "" {
		name = c.Query("context")
	}
	if name == "" || name == "index" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	view, err := services.ParseView(name)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	options, err := h.lists.Options(c.Request.Context(), view)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	h.render(c, http.StatusOK, "form.html", gin.H{
		"Title":   "Dodawanie",
		"Context": view.String(),
		"View":    view,
		"Options": options,
		"Views":   services.Views(),
	})
}
