package handlers

import (
	"net/http"
	"strconv"

	"aaronblog/internal/service"

	"github.com/gin-gonic/gin"
)

// Preview lengths for log lines; stored content is never truncated.
const (
	titlePreviewLen   = 100
	contentPreviewLen = 250
)

func (h *Handler) home(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := h.services.Blogs.List(ctx)
	if err != nil {
		h.renderError(c, "home_list_failed", err)
		return
	}
	categories, err := h.services.CategoryNames(ctx)
	if err != nil {
		h.renderError(c, "home_categories_failed", err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Posts":      posts,
		"Categories": categories,
		"User":       currentSession(c),
	})
}

func (h *Handler) createPostPage(c *gin.Context) {
	categories, err := h.services.CategoryNames(c.Request.Context())
	if err != nil {
		h.renderError(c, "create_page_categories_failed", err)
		return
	}
	c.HTML(http.StatusOK, "create-post.html", gin.H{
		"Categories": categories,
		"User":       currentSession(c),
	})
}

func (h *Handler) createPost(c *gin.Context) {
	sess := currentSession(c)

	in := service.CreateBlogInput{
		Title:        c.PostForm("title"),
		Content:      c.PostForm("content"),
		CategoryName: chosenCategory(c),
		CreatorID:    sess.UserID,
		CreatorName:  sess.UserName,
	}

	b, err := h.services.Blogs.Create(c.Request.Context(), in)
	if err != nil {
		h.renderPostError(c, "create_post_failed", err, "user_id", sess.UserID)
		return
	}

	if h.log != nil {
		h.log.Infow("post_created",
			"blog_id", b.ID,
			"author", b.CreatorName,
			"category", b.CategoryName,
			"title", truncate(b.Title, titlePreviewLen),
			"preview", truncate(b.Content, contentPreviewLen),
		)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) editPostPage(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	sess := currentSession(c)
	ctx := c.Request.Context()

	post, err := h.services.Blogs.Get(ctx, id)
	if err != nil {
		h.renderPostError(c, "edit_page_load_failed", err, "blog_id", id)
		return
	}
	if post.CreatorID != sess.UserID {
		c.HTML(http.StatusForbidden, "error.html", gin.H{"User": sess, "Message": msgNotPostOwner})
		return
	}

	categories, err := h.services.CategoryNames(ctx)
	if err != nil {
		h.renderError(c, "edit_page_categories_failed", err, "blog_id", id)
		return
	}

	c.HTML(http.StatusOK, "edit-post.html", gin.H{
		"Post":       post,
		"Categories": categories,
		"User":       sess,
	})
}

func (h *Handler) editPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	sess := currentSession(c)

	in := service.EditBlogInput{
		ID:           id,
		Title:        c.PostForm("title"),
		Content:      c.PostForm("content"),
		CategoryName: chosenCategory(c),
		RequesterID:  sess.UserID,
	}
	if err := h.services.Blogs.Edit(c.Request.Context(), in); err != nil {
		h.renderPostError(c, "edit_post_failed", err, "blog_id", id, "user_id", sess.UserID)
		return
	}

	if h.log != nil {
		h.log.Infow("post_edited",
			"blog_id", id,
			"user_id", sess.UserID,
			"title", truncate(in.Title, titlePreviewLen),
		)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	sess := currentSession(c)

	if err := h.services.Blogs.Delete(c.Request.Context(), id, sess.UserID); err != nil {
		h.renderPostError(c, "delete_post_failed", err, "blog_id", id, "user_id", sess.UserID)
		return
	}

	if h.log != nil {
		h.log.Infow("post_deleted", "blog_id", id, "user_id", sess.UserID)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// postID parses the :id route parameter, rendering the 404 page on garbage.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"User": currentSession(c), "Message": msgPostNotFound})
		return 0, false
	}
	return id, true
}

// chosenCategory resolves the category select: picking "new" means the
// newCategory text field holds the name.
func chosenCategory(c *gin.Context) string {
	category := c.PostForm("category")
	if category == "new" {
		return c.PostForm("newCategory")
	}
	return category
}

// truncate shortens s for log lines.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "..."
}
