package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/vedran77/arbiter/internal/auth"
	"github.com/vedran77/arbiter/internal/config"
	"github.com/vedran77/arbiter/internal/database"
	"github.com/vedran77/arbiter/internal/judge"
	postgresrepo "github.com/vedran77/arbiter/internal/repository/postgres"
	"github.com/vedran77/arbiter/internal/service"
	"github.com/vedran77/arbiter/internal/transport/http/handlers"
	"github.com/vedran77/arbiter/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	debateRepo := postgresrepo.NewDebateRepo(pool)

	// Auth primitives
	hasher := auth.NewHasher(auth.DefaultTimeCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	// External judging service
	judgeClient := judge.NewClient(cfg.JudgeURL, cfg.JudgeTimeout)

	// Services
	authService := service.NewAuthService(userRepo, hasher, tokens)
	debateService := service.NewDebateService(debateRepo, judgeClient)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	debateHandler := handlers.NewDebateHandler(debateService)

	mux := handlers.NewRouter(authHandler, debateHandler, middleware.Auth(tokens))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
