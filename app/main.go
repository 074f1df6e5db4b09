package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amit-3245/Secure-Notes-API/config"
	"github.com/amit-3245/Secure-Notes-API/delivery"
	"github.com/amit-3245/Secure-Notes-API/middleware"
	"github.com/amit-3245/Secure-Notes-API/repository"
	"github.com/amit-3245/Secure-Notes-API/service"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	utils.InitLogger(cfg.AppEnv)

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("connected to database")

	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().Msg("connected to redis")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	pendingRepo := repository.NewPendingSignupRepository(redisClient)
	resetRepo := repository.NewResetTokenRepository(redisClient)

	// Services
	mailer := utils.NewMailer(cfg.SMTP)
	authService := service.NewAuthService(
		userRepo, otpRepo, pendingRepo, resetRepo, mailer,
		cfg.JWTSecret, cfg.BcryptCost, cfg.ResetURL,
	)
	noteService := service.NewNoteService(noteRepo)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()
	app.Use(gin.Logger())
	app.Use(middleware.RequestID())
	config.InitMiddleware(app, cfg)

	delivery.NewAuthHandler(app, authService)
	delivery.NewPasswordHandler(app, authService)
	delivery.NewNoteHandler(app, noteService, authService.GetAccessTokenManager())

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
