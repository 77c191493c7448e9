// Package main is the entry point for Wildlands.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wildlands/internal/game"
	"github.com/samdwyer/wildlands/internal/gamedata"
	"github.com/samdwyer/wildlands/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_WILDLANDS_API_KEY and WILDLANDS_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{SampleRatio: cfg.TraceSampleRatio})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		log.Printf("Telemetry session %s", telemetry.SessionID())
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg, catalog)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Final score %d (seed %d)", g.Session().Player.Score, cfg.Seed)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_WILDLANDS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_WILDLANDS_DATASET")
	if dataset == "" {
		dataset = "wildlands"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
