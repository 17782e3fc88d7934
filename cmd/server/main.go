package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/durgaprameelakukkala/go-todo-app/internal/config"
	"github.com/durgaprameelakukkala/go-todo-app/internal/database"
	"github.com/durgaprameelakukkala/go-todo-app/internal/logger"
	"github.com/durgaprameelakukkala/go-todo-app/internal/repository"
	"github.com/durgaprameelakukkala/go-todo-app/internal/router"
	"github.com/durgaprameelakukkala/go-todo-app/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.IsProduction())

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	store, err := router.NewSessionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session store")
	}

	authService := services.NewAuthService(repository.NewUserRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))

	r := router.New(store, authService, taskService, log.Logger)

	// Start server
	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
