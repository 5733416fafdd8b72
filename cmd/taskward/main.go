package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskward/taskward"
	fiberadapter "github.com/taskward/taskward/adapters/fiber"
	pgxadapter "github.com/taskward/taskward/adapters/pgx"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ttl, err := tokenTTL()
	if err != nil {
		log.Fatal().Err(err).Msg("JWT_EXPIRATION_TIME is required (seconds)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create connection pool")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to reach database")
	}

	app := fiber.New()
	app.Use(fiberadapter.RequestLogger(log.Logger))

	if _, err := taskward.New(taskward.Config{
		Secret:   secret,
		TokenTTL: ttl,
		Database: pgxadapter.New(pool),
		HTTP:     fiberadapter.New(app),
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to configure taskward")
	}

	log.Info().Str("port", port).Dur("tokenTTL", ttl).Msg("starting server")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// tokenTTL reads JWT_EXPIRATION_TIME as a number of seconds.
func tokenTTL() (time.Duration, error) {
	raw := os.Getenv("JWT_EXPIRATION_TIME")
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
