// Package main is the entry point for rivermap.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rivermap/internal/app"
	"github.com/samdwyer/rivermap/internal/telemetry"
	"github.com/samdwyer/rivermap/internal/tileset"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_RIVERMAP_API_KEY and RIVERMAP_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Maps will be generated without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	set, err := loadTileset(cfg)
	if err != nil {
		log.Fatalf("Failed to load tile set: %v", err)
	}

	a, err := app.New(cfg, set)
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("Map error: %v", err)
	}
}

// loadTileset returns the configured tile set file, or the embedded one.
func loadTileset(cfg app.Config) (*tileset.Set, error) {
	if cfg.TilesetPath != "" {
		return tileset.LoadFile(cfg.TilesetPath)
	}
	return tileset.LoadDefault()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_RIVERMAP_API_KEY")
	dataset := os.Getenv("HONEYCOMB_RIVERMAP_DATASET")
	if dataset == "" {
		dataset = "rivermap" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
