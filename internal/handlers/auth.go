package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/durgaprameelakukkala/go-todo-app/internal/constants"
	"github.com/durgaprameelakukkala/go-todo-app/internal/dto"
	apierrors "github.com/durgaprameelakukkala/go-todo-app/internal/errors"
	"github.com/durgaprameelakukkala/go-todo-app/internal/flash"
	"github.com/durgaprameelakukkala/go-todo-app/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SignupPage renders the signup form data.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	renderAuthPage(c)
}

// Signup registers a new user and sends them to the login page.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid form data")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			flash.Redirect(c, constants.PathSignup, flash.CategoryWarning, "Please fill in both username and password.")
		case errors.Is(err, services.ErrUsernameTaken):
			flash.Redirect(c, constants.PathSignup, flash.CategoryDanger, "Username already exists. Choose a different one.")
		default:
			apierrors.Fault(c, err)
		}
		return
	}

	log.Info().Uint64("user_id", user.ID).Str("username", user.Username).Msg("user signed up")
	flash.Redirect(c, constants.PathLogin, flash.CategorySuccess, "Signup successful! Please log in.")
}

// LoginPage renders the login form data.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	renderAuthPage(c)
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid form data")
		return
	}

	next := c.Query(constants.NextQueryParam)

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", strings.TrimSpace(req.Username)).Msg("login failed")
			flash.Redirect(c, loginLocation(next), flash.CategoryDanger, "Invalid username or password.")
			return
		}
		apierrors.Fault(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyUserID, user.ID)

	log.Info().Uint64("user_id", user.ID).Msg("user logged in")
	flash.Redirect(c, SafeRedirectTarget(next), flash.CategorySuccess, "Logged in successfully!")
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()

	if userID, ok := c.Get(constants.ContextKeyUserID); ok {
		log.Info().Interface("user_id", userID).Msg("user logged out")
	}
	flash.Redirect(c, constants.PathLogin, flash.CategoryInfo, "Logged out successfully.")
}

// SafeRedirectTarget returns next when it is a local absolute path and
// the task list otherwise.
func SafeRedirectTarget(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return constants.PathIndex
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return constants.PathIndex
	}
	return next
}

func loginLocation(next string) string {
	if next == "" {
		return constants.PathLogin
	}
	return constants.PathLogin + "?" + url.Values{constants.NextQueryParam: {next}}.Encode()
}

func renderAuthPage(c *gin.Context) {
	messages, err := flash.Pop(c)
	if err != nil {
		apierrors.Fault(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthPage{Flashes: messages})
}
