// Package main is the entry point for Duelgrounds.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/availlant/duelgrounds/internal/arena"
	"github.com/availlant/duelgrounds/internal/telemetry"
)

func main() {
	// Load .env file for local development.
	// This makes HONEYCOMB_DUELGROUNDS_API_KEY available.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Duel will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	a := arena.New(arena.Config{
		Seed:  seedFromEnv(),
		Color: true,
	})
	if err := a.Run(ctx); err != nil {
		log.Fatalf("Duel error: %v", err)
	}
}

// seedFromEnv reads DUELGROUNDS_SEED for reproducible duels. Absent or
// invalid values mean a time-based seed.
func seedFromEnv() int64 {
	raw := os.Getenv("DUELGROUNDS_SEED")
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Note: ignoring invalid DUELGROUNDS_SEED %q", raw)
		return 0
	}
	return seed
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_DUELGROUNDS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUELGROUNDS_DATASET")
	if dataset == "" {
		dataset = "duelgrounds"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
