package handlers

import (
	"net/http"

	"aaronblog/internal/logger"
	"aaronblog/internal/service"

	"github.com/gin-gonic/gin"
)

// sessionCookieName is the browser cookie carrying the signed session token.
const sessionCookieName = "blog_session"

// cookieMaxAge matches the default session TTL; the signed token inside
// expires on its own regardless.
const cookieMaxAge = 24 * 60 * 60

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with templates loaded and all
// routes registered. templateGlob points at the page templates, e.g.
// "web/templates/*.html".
func (h *Handler) InitRoutes(templateGlob string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob(templateGlob)

	// Every route sees the current session (or its absence); only mutating
	// routes require one.
	router.Use(h.sessionMiddleware)

	router.GET("/health", h.health)
	router.Static("/static", "web/static")

	router.GET("/", h.home)

	h.registerAuthRoutes(router)
	h.registerPostRoutes(router)

	// Live home-feed push over WebSocket on the same port.
	router.GET("/ws", h.wsFeed)

	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/signup", h.signUpPage)
	r.POST("/signup", h.signUp)
	r.GET("/signin", h.signInPage)
	r.POST("/signin", h.signIn)
	r.GET("/signout", h.signOut)
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	posts := r.Group("/", h.requireUser)
	{
		posts.GET("/create-post", h.createPostPage)
		posts.POST("/create-post", h.createPost)
		posts.GET("/edit/:id", h.editPostPage)
		posts.POST("/edit/:id", h.editPost)
		posts.POST("/delete/:id", h.deletePost)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"User": currentSession(c)})
}
