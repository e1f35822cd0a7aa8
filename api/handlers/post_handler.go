package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/blogly/pkg/repository"
	"gorm.io/gorm"
)

// PostHandler serves the post pages.
type PostHandler struct {
	posts *repository.PostRepository
	users *repository.UserRepository
	tags  *repository.TagRepository
}

// NewPostHandler wires the handler to the database.
func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{
		posts: repository.NewPostRepository(db),
		users: repository.NewUserRepository(db),
		tags:  repository.NewTagRepository(db),
	}
}

// NewForm renders the new-post form for a user, offering every tag as a
// checkbox.
func (h *PostHandler) NewForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	tags, err := h.tags.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post-new.html", gin.H{"User": user, "Tags": tags})
}

// Create handles the new-post submission under /users/:id/posts/new.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	tagIDs, ok := formTagIDs(c)
	if !ok {
		return
	}
	post, err := h.posts.Create(c.PostForm("title"), c.PostForm("content"), userID, tagIDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// Show renders a post's detail page with its author and tags.
func (h *PostHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post-details.html", gin.H{"Post": post})
}

// EditForm renders the post edit page with the current tag set checked.
func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	tags, err := h.tags.List()
	if err != nil {
		fail(c, err)
		return
	}
	selected := make(map[uint]bool, len(post.Tags))
	for _, t := range post.Tags {
		selected[t.ID] = true
	}
	c.HTML(http.StatusOK, "post-edit.html", gin.H{"Post": post, "Tags": tags, "Selected": selected})
}

// Update handles the edit form submission, replacing the tag set.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tagIDs, ok := formTagIDs(c)
	if !ok {
		return
	}
	post, err := h.posts.Update(id, c.PostForm("title"), c.PostForm("content"), tagIDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// Delete removes a post and redirects to its owner's page.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.posts.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", post.UserID))
}
