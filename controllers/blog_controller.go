package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/soham2710/bulemo/middleware"
	"github.com/soham2710/bulemo/services"
	"github.com/soham2710/bulemo/utils"
)

type BlogController struct {
	BlogSvc *services.BlogService
}

func NewBlogController(svc *services.BlogService) *BlogController {
	return &BlogController{BlogSvc: svc}
}

type blogCreatePayload struct {
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Excerpt       string         `json:"excerpt"`
	Status        string         `json:"status"`
	FeaturedImage string         `json:"featuredImage"`
	Tags          datatypes.JSON `json:"tags"`
}

type blogUpdatePayload struct {
	Title         *string        `json:"title"`
	Content       *string        `json:"content"`
	Excerpt       *string        `json:"excerpt"`
	Status        *string        `json:"status"`
	FeaturedImage *string        `json:"featuredImage"`
	Tags          datatypes.JSON `json:"tags"`
}

// GetBlogs (GET /blogs) — published posts for everyone, all statuses for an
// authenticated admin.
func (b *BlogController) GetBlogs(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := b.BlogSvc.List(page, limit, middleware.IsAdmin(c))
	if err != nil {
		log.Printf("❌ Error fetching blogs: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching blogs")
		return
	}
	utils.JSONList(c, http.StatusOK, result.Posts, buildPagination(result.Total, page, limit))
}

// GetBlog (GET /blogs/:id) — the identifier may be a numeric id or a slug.
func (b *BlogController) GetBlog(c *gin.Context) {
	post, err := b.BlogSvc.GetByIDOrSlug(c.Param("id"), middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		log.Printf("❌ Error fetching blog post: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching blog post")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, post)
}

// CreateBlog (POST /blogs, admin).
func (b *BlogController) CreateBlog(c *gin.Context) {
	var payload blogCreatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := b.BlogSvc.Create(services.BlogCreateInput{
		Title:         payload.Title,
		Content:       payload.Content,
		Excerpt:       payload.Excerpt,
		Status:        payload.Status,
		FeaturedImage: payload.FeaturedImage,
		Tags:          payload.Tags,
		Author:        c.GetString(middleware.ContextAdminUsername),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, "Title and content are required")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Status must be draft or published")
		case errors.Is(err, services.ErrDuplicateSlug):
			utils.JSONError(c, http.StatusBadRequest, "A blog with this title already exists")
		default:
			log.Printf("❌ Error creating blog post: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Error creating blog post")
		}
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Blog post created successfully", gin.H{
		"id":   post.ID,
		"slug": post.Slug,
	})
}

// UpdateBlog (PUT /blogs/:id, admin) — partial update; only supplied fields
// change.
func (b *BlogController) UpdateBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	var payload blogUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := b.BlogSvc.Update(uint(id), services.BlogUpdateInput{
		Title:         payload.Title,
		Content:       payload.Content,
		Excerpt:       payload.Excerpt,
		Status:        payload.Status,
		FeaturedImage: payload.FeaturedImage,
		Tags:          payload.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Blog post not found")
		case errors.Is(err, services.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, "Title and content cannot be empty")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Status must be draft or published")
		case errors.Is(err, services.ErrDuplicateSlug):
			utils.JSONError(c, http.StatusBadRequest, "A blog with this title already exists")
		default:
			log.Printf("❌ Error updating blog post %d: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Error updating blog post")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Blog post updated successfully", gin.H{
		"slug": post.Slug,
	})
}

// DeleteBlog (DELETE /blogs/:id, admin) — hard delete.
func (b *BlogController) DeleteBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	if err := b.BlogSvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		log.Printf("❌ Error deleting blog post %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Error deleting blog post")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Blog post deleted successfully", nil)
}
