package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/blogly/pkg/repository"
	"gorm.io/gorm"
)

// UserHandler serves the user pages.
type UserHandler struct {
	users *repository.UserRepository
	posts *repository.PostRepository
}

// NewUserHandler wires the handler to the database.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		users: repository.NewUserRepository(db),
		posts: repository.NewPostRepository(db),
	}
}

// List renders the user listing.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{"Users": users})
}

// NewForm renders the form to add a new user.
func (h *UserHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user-new.html", nil)
}

// Create handles the new-user form submission.
func (h *UserHandler) Create(c *gin.Context) {
	_, err := h.users.Create(c.PostForm("first"), c.PostForm("last"), c.PostForm("image"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// Show renders a user's detail page with their posts.
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	posts, err := h.posts.ListByUser(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "user-details.html", gin.H{"User": user, "Posts": posts})
}

// EditForm renders the user edit page.
func (h *UserHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "user-edit.html", gin.H{"User": user})
}

// Update handles the edit form submission.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	_, err := h.users.Update(id, c.PostForm("first"), c.PostForm("last"), c.PostForm("image"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// Delete removes a user and redirects to the listing. Deleting an id that
// is already gone redirects all the same.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}
