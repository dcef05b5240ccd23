package handlers

import (
	"errors"
	"net/http"

	"aaronblog/internal/service"

	"github.com/gin-gonic/gin"
)

// User-visible failure messages; internal detail stays in the logs.
const (
	msgDuplicateUser   = "User ID already taken. Please choose a different one."
	msgUserNotFound    = "User ID not found."
	msgWrongPassword   = "Incorrect password."
	msgPostNotFound    = "Post not found."
	msgNotPostOwner    = "You are not authorized to modify this post."
	msgInvalidSignUp   = "Please fill in all fields (user id 3-32 chars, password at least 4)."
	msgCategoryMissing = "Please pick or enter a category."
)

// renderError logs the failure with context and shows the generic error page.
func (h *Handler) renderError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"User": currentSession(c)})
}

// renderPostError maps post-service sentinels to the 404/403 pages and sends
// everything else to the generic error page.
func (h *Handler) renderPostError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		c.HTML(http.StatusNotFound, "404.html", gin.H{"User": currentSession(c), "Message": msgPostNotFound})
	case errors.Is(err, service.ErrNotOwner):
		c.HTML(http.StatusForbidden, "error.html", gin.H{"User": currentSession(c), "Message": msgNotPostOwner})
	default:
		h.renderError(c, logKey, err, kv...)
	}
}
