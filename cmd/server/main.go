package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/config"
	"github.com/samurun/portfolio-api/internal/database"
	"github.com/samurun/portfolio-api/internal/handler"
	"github.com/samurun/portfolio-api/internal/middleware"
	"github.com/samurun/portfolio-api/internal/queue"
	"github.com/samurun/portfolio-api/internal/repository"
	"github.com/samurun/portfolio-api/internal/router"
	"github.com/samurun/portfolio-api/internal/service"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	go queue.StartPortfolioConsumer()

	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.HTTPErrorHandler

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(repository.NewUserRepo(db), cfg.JWTSecret, cfg.BcryptCost),
		Tech:       handler.NewTechHandler(repository.NewTechRepo(db), service.PublishPortfolioEvent),
		Summary:    handler.NewSummaryHandler(repository.NewSummaryRepo(db), service.PublishPortfolioEvent),
		Experience: handler.NewExperienceHandler(repository.NewExperienceRepo(db), service.PublishPortfolioEvent),
	}
	router.Register(e, h, cfg.JWTSecret,
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
		middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
