// Package flash keeps one-shot user messages in the session between a
// redirect and the next page view.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	apierrors "github.com/durgaprameelakukkala/go-todo-app/internal/errors"
)

// Message categories
const (
	CategorySuccess = "success"
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
	CategoryMessage = "message"
)

// Message is a single flash entry.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func init() {
	// Session stores serialize values with gob.
	gob.Register(Message{})
}

// Add queues a message in the current session without saving it.
func Add(c *gin.Context, category, text string) {
	sessions.Default(c).AddFlash(Message{Category: category, Text: text})
}

// Pop drains the queued messages and saves the session.
func Pop(c *gin.Context) ([]Message, error) {
	session := sessions.Default(c)
	raw := session.Flashes()

	messages := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			messages = append(messages, m)
		}
	}

	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			return nil, err
		}
	}
	return messages, nil
}

// Redirect queues a message, saves the session and redirects to location.
func Redirect(c *gin.Context, location, category, text string) {
	Add(c, category, text)
	if err := sessions.Default(c).Save(); err != nil {
		apierrors.Fault(c, err)
		return
	}
	c.Redirect(http.StatusFound, location)
}
