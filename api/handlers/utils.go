package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/blogly/pkg/repository"
)

// pathID parses the :id path parameter. Non-numeric ids render the 404 page,
// matching the behavior for ids that do not resolve.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

// fail translates repository errors into HTTP responses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		notFound(c)
	case errors.Is(err, repository.ErrValidation):
		c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrConflict):
		c.String(http.StatusConflict, err.Error())
	default:
		c.String(http.StatusInternalServerError, "internal error")
	}
}

// formTagIDs parses the repeated tag checkbox values from a post form.
func formTagIDs(c *gin.Context) ([]uint, bool) {
	raw := c.PostFormArray("tag")
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid tag id %q", v)
			return nil, false
		}
		ids = append(ids, uint(id))
	}
	return ids, true
}
