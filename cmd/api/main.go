package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironfit-labs/gym-platform/internal/config"
	dbpkg "github.com/ironfit-labs/gym-platform/internal/db"
	"github.com/ironfit-labs/gym-platform/internal/logger"
	"github.com/ironfit-labs/gym-platform/internal/middleware"
	"github.com/ironfit-labs/gym-platform/internal/notification"
	"github.com/ironfit-labs/gym-platform/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	mailer := notification.NewMailer(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer mailer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go mailer.Start(ctx)

	notifier := notification.NewDispatcher(mailer)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier)

	logger.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
