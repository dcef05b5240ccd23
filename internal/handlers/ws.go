package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMsgSize      = 1 << 12 // 4 KB
	defaultInterval = 5 * time.Second
	maxInterval     = 60 * time.Second
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsFeed pushes the current home post list on connect and then periodically,
// so the home page can refresh without reloading.
func (h *Handler) wsFeed(c *gin.Context) {
	interval := parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send the current list immediately.
	if err := h.sendPosts(c.Request.Context(), conn); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendPosts(c.Request.Context(), conn); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=10s with bounds.
func parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
		if v, err := strconv.Atoi(s); err == nil && v > 0 && time.Duration(v)*time.Second <= maxInterval {
			return time.Duration(v) * time.Second
		}
	}
	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendPosts fetches and writes the current post list with a write deadline.
func (h *Handler) sendPosts(ctx context.Context, conn *websocket.Conn) error {
	posts, err := h.services.Blogs.List(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_list_posts_failed", "err", err)
		}
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "posts", Data: posts})
}
