package handlers

import (
	"net/http"

	"techcare/internal/models"
	"techcare/internal/services"
	"techcare/internal/utils"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// List returns every blog post. No sort, no pagination; the collection is
// seeded and small.
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogService.List(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if blogs == nil {
		blogs = []*models.Blog{}
	}
	c.JSON(http.StatusOK, blogs)
}
