package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/soham2710/bulemo/controllers"
	"github.com/soham2710/bulemo/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BlogController,
	cc *controllers.ContactController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
	}

	blogs := r.Group("/blogs")
	{
		// Public reads carry OptionalAuth so admins see drafts too.
		blogs.GET("", middleware.OptionalAuth(), bc.GetBlogs)
		blogs.GET("/:id", middleware.OptionalAuth(), bc.GetBlog)

		blogs.POST("", middleware.RequireAdmin(), bc.CreateBlog)
		blogs.PUT("/:id", middleware.RequireAdmin(), bc.UpdateBlog)
		blogs.DELETE("/:id", middleware.RequireAdmin(), bc.DeleteBlog)
	}

	contact := r.Group("/contact")
	{
		contact.POST("", cc.CreateContact)

		// /download must stay ahead of /:id
		contact.GET("/download", middleware.RequireAdmin(), cc.DownloadContacts)
		contact.GET("", middleware.RequireAdmin(), cc.GetContacts)
		contact.GET("/:id", middleware.RequireAdmin(), cc.GetContact)
		contact.DELETE("/:id", middleware.RequireAdmin(), cc.DeleteContact)
	}

	return r
}
