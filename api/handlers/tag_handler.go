package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/blogly/pkg/repository"
	"gorm.io/gorm"
)

// TagHandler serves the tag pages.
type TagHandler struct {
	tags  *repository.TagRepository
	posts *repository.PostRepository
}

// NewTagHandler wires the handler to the database.
func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{
		tags:  repository.NewTagRepository(db),
		posts: repository.NewPostRepository(db),
	}
}

// List renders the tag listing.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tags.html", gin.H{"Tags": tags})
}

// NewForm renders the form to add a new tag.
func (h *TagHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "tag-new.html", nil)
}

// Create handles the new-tag form submission.
func (h *TagHandler) Create(c *gin.Context) {
	if _, err := h.tags.Create(c.PostForm("name")); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

// Show renders a tag's detail page with the posts carrying it.
func (h *TagHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tag, err := h.tags.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	posts, err := h.posts.ListByTag(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tag-details.html", gin.H{"Tag": tag, "Posts": posts})
}

// EditForm renders the tag edit page.
func (h *TagHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tag, err := h.tags.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tag-edit.html", gin.H{"Tag": tag})
}

// Update handles the edit form submission.
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.tags.Update(id, c.PostForm("name")); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

// Delete removes a tag and redirects to the listing. Deleting an id that
// is already gone redirects all the same.
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.tags.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}
