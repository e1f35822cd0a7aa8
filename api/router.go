package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/blogly/api/handlers"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine with templates and all routes wired.
func NewRouter(db *gorm.DB, templateGlob string) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())
	r.LoadHTMLGlob(templateGlob)

	users := handlers.NewUserHandler(db)
	posts := handlers.NewPostHandler(db)
	tags := handlers.NewTagHandler(db)

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	// User routes
	r.GET("/users", users.List)
	r.GET("/users/new", users.NewForm)
	r.POST("/users/new", users.Create)
	r.GET("/users/:id", users.Show)
	r.GET("/users/:id/edit", users.EditForm)
	r.POST("/users/:id/edit", users.Update)
	r.POST("/users/:id/delete", users.Delete)

	// Post routes
	r.GET("/users/:id/posts/new", posts.NewForm)
	r.POST("/users/:id/posts/new", posts.Create)
	r.GET("/posts/:id", posts.Show)
	r.GET("/posts/:id/edit", posts.EditForm)
	r.POST("/posts/:id/edit", posts.Update)
	r.POST("/posts/:id/delete", posts.Delete)

	// Tag routes
	r.GET("/tags", tags.List)
	r.GET("/tags/new", tags.NewForm)
	r.POST("/tags/new", tags.Create)
	r.GET("/tags/:id", tags.Show)
	r.GET("/tags/:id/edit", tags.EditForm)
	r.POST("/tags/:id/edit", tags.Update)
	r.POST("/tags/:id/delete", tags.Delete)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return r
}
