package handlers

import (
	"log"
	"net/http"

	"car_rental/internal/flash"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	flashCookie     = "flash_session"
	flashSessionKey = "flash_session_id"
)

// FlashSession makes sure every browser carries a flash session id cookie.
func FlashSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(flashCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(flashCookie, sid, 0, "/", "", false, true)
		}
		c.Set(flashSessionKey, sid)
		c.Next()
	}
}

// responder holds the helpers shared by every page handler.
type responder struct {
	flashes flash.Store
}

func (r responder) push(c *gin.Context, msg flash.Message) {
	sid := c.GetString(flashSessionKey)
	if sid == "" {
		return
	}
	if err := r.flashes.Push(c.Request.Context(), sid, msg); err != nil {
		log.Printf("Failed to store flash message: %v", err)
	}
}

// render executes a page template with the pending flash messages attached.
func (r responder) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if sid := c.GetString(flashSessionKey); sid != "" {
		msgs, err := r.flashes.Pop(c.Request.Context(), sid)
		if err != nil {
			log.Printf("Failed to load flash messages: %v", err)
		}
		data["Flashes"] = msgs
	}
	c.HTML(status, name, data)
}

func (r responder) fail(c *gin.Context, status int, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	r.render(c, status, "error.html", gin.H{
		"Title":   "Błąd",
		"Status":  status,
		"Message": err.Error(),
	})
}
