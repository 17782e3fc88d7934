package router

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/durgaprameelakukkala/go-todo-app/internal/config"
	"github.com/durgaprameelakukkala/go-todo-app/internal/constants"
	"github.com/durgaprameelakukkala/go-todo-app/internal/handlers"
	"github.com/durgaprameelakukkala/go-todo-app/internal/logger"
	"github.com/durgaprameelakukkala/go-todo-app/internal/middleware"
	"github.com/durgaprameelakukkala/go-todo-app/internal/services"
)

// NewSessionStore builds the configured session backend.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case config.SessionStoreCookie:
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	case config.SessionStoreRedis:
		s, err := redisStore.NewStore(
			10, // Redis pool size
			"tcp",
			cfg.RedisHost+":"+cfg.RedisPort,
			"", // username (empty for default user)
			cfg.RedisPassword,
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store = s
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

// New registers every route of the application on a fresh gin engine.
func New(store sessions.Store, authService *services.AuthService, taskService *services.TaskService, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.LoadUser(authService))

	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "To-do service is running",
		})
	})

	// Login and signup are only for anonymous visitors
	guest := r.Group("", middleware.RequireGuest())
	{
		guest.GET("/signup", authHandler.SignupPage)
		guest.POST("/signup", authHandler.Signup)
		guest.GET("/login", authHandler.LoginPage)
		guest.POST("/login", authHandler.Login)
	}

	// Task routes (protected)
	tasks := r.Group("", middleware.RequireAuth())
	{
		tasks.GET("/", taskHandler.Index)
		tasks.POST("/add", taskHandler.Add)
		tasks.POST("/complete/:id", middleware.TaskIDParam(), taskHandler.Complete)
		tasks.POST("/undo/:id", middleware.TaskIDParam(), taskHandler.Undo)
		tasks.POST("/delete/:id", middleware.TaskIDParam(), taskHandler.Delete)
		tasks.GET("/edit/:id", middleware.TaskIDParam(), taskHandler.EditPage)
		tasks.POST("/edit/:id", middleware.TaskIDParam(), taskHandler.Edit)
		tasks.GET("/logout", authHandler.Logout)
	}

	return r
}
