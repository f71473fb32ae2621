package main

import (
	"context"
	"log"
	"log/slog"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/madmax304/news-aggregator-test/internal/app"
	"github.com/madmax304/news-aggregator-test/internal/config"
	"github.com/madmax304/news-aggregator-test/internal/handler"
	"github.com/madmax304/news-aggregator-test/internal/logging"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	_, logCloser, err := logging.Setup(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	defer logCloser.Close()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error building pipeline: %v", err)
	}
	defer a.Close()

	articleHandler := handler.NewArticleHandler(a.Pipeline)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/process-article", articleHandler.ProcessArticle)
	r.GET("/health", articleHandler.GetHealth)

	if a.AudioDir != "" {
		r.Static("/audio", a.AudioDir)
	}

	if cfg.StaticDir != "" {
		r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	}

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
