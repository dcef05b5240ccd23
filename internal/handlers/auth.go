package handlers

import (
	"errors"
	"net/http"
	"strings"

	"aaronblog/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) signUpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"User": currentSession(c)})
}

func (h *Handler) signUp(c *gin.Context) {
	in := service.SignUpInput{
		UserID:   strings.TrimSpace(c.PostForm("user_id")),
		Name:     strings.TrimSpace(c.PostForm("name")),
		Password: c.PostForm("password"),
	}

	err := h.services.SignUp(c.Request.Context(), in)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/signin")
	case errors.Is(err, service.ErrDuplicateUser):
		c.HTML(http.StatusOK, "signup.html", gin.H{"User": currentSession(c), "Message": msgDuplicateUser})
	case strings.Contains(err.Error(), "invalid sign-up input"):
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"User": currentSession(c), "Message": msgInvalidSignUp})
	default:
		h.renderError(c, "sign_up_failed", err, "user_id", in.UserID)
	}
}

func (h *Handler) signInPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{"User": currentSession(c)})
}

func (h *Handler) signIn(c *gin.Context) {
	userID := strings.TrimSpace(c.PostForm("user_id"))
	password := c.PostForm("password")

	token, err := h.services.SignIn(c.Request.Context(), userID, password)
	switch {
	case err == nil:
		c.SetCookie(sessionCookieName, token, cookieMaxAge, "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, service.ErrUserNotFound):
		c.HTML(http.StatusOK, "signin.html", gin.H{"Message": msgUserNotFound})
	case errors.Is(err, service.ErrInvalidPassword):
		c.HTML(http.StatusOK, "signin.html", gin.H{"Message": msgWrongPassword})
	default:
		h.renderError(c, "sign_in_failed", err, "user_id", userID)
	}
}

// signOut destroys the session and clears the cookie. Destruction errors are
// logged but never fail the request.
func (h *Handler) signOut(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		if err := h.services.SignOut(c.Request.Context(), token); err != nil && h.log != nil {
			h.log.Errorw("sign_out_failed", "err", err)
		}
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
