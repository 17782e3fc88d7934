package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/durgaprameelakukkala/go-todo-app/internal/constants"
	apierrors "github.com/durgaprameelakukkala/go-todo-app/internal/errors"
	"github.com/durgaprameelakukkala/go-todo-app/internal/flash"
	"github.com/durgaprameelakukkala/go-todo-app/internal/models"
	"github.com/durgaprameelakukkala/go-todo-app/internal/services"
)

// UserLoader resolves the user id stored in the session.
type UserLoader interface {
	GetUser(ctx context.Context, id uint64) (*models.User, error)
}

// LoadUser puts the session's user into the request context. A session
// that points at a user who no longer exists is cleared.
func LoadUser(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := sessionUserID(session.Get(constants.ContextKeyUserID))
		if !ok {
			c.Next()
			return
		}

		user, err := loader.GetUser(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				apierrors.Fault(c, err)
				return
			}
			log.Warn().Uint64("user_id", userID).Msg("session refers to unknown user")
			session.Clear()
			if err := session.Save(); err != nil {
				apierrors.Fault(c, err)
				return
			}
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page, remembering
// the requested page in the next query parameter.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); ok {
			c.Next()
			return
		}

		location := constants.PathLogin + "?" + url.Values{
			constants.NextQueryParam: {c.Request.URL.RequestURI()},
		}.Encode()
		flash.Redirect(c, location, flash.CategoryMessage, "Please log in to access this page.")
		c.Abort()
	}
}

// RequireGuest sends already authenticated users to the task list.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); ok {
			c.Redirect(http.StatusFound, constants.PathIndex)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return sessionUserID(userID)
}

// GetUser retrieves the current user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func sessionUserID(v interface{}) (uint64, bool) {
	switch id := v.(type) {
	case uint64:
		return id, id != 0
	case uint:
		return uint64(id), id != 0
	case int:
		if id <= 0 {
			return 0, false
		}
		return uint64(id), true
	case int64:
		if id <= 0 {
			return 0, false
		}
		return uint64(id), true
	default:
		return 0, false
	}
}
