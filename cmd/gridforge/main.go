// gridforge generates tactical grid maps for turn-based combat encounters.
//
// Usage:
//
//	gridforge generate    - Generate a map and print its compact wire form
//	gridforge inspect     - Decode and summarize a compact map string
//	gridforge positions   - Rank tactical placement positions for a map
//	gridforge catalog     - Manage the local map catalog
//
// Global flags:
//
//	--db <path>  - Path to the map catalog database (default: ~/.gridforge/maps.db)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/gridforge/internal/telemetry"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "gridforge",
	Short: "Procedural tactical grid maps for turn-based combat",
	Long: `gridforge builds fixed-size tactical grid maps from a seed: the same
seed, algorithm and parameters always produce the same map, cell for cell.

Available commands:
  generate   - Generate a map and print its compact wire form
  inspect    - Decode and summarize a compact map string
  positions  - Rank tactical placement positions for a map
  catalog    - List, show and delete stored maps

Examples:
  gridforge generate --width 25 --height 25 --seed 12345 --algorithm partition
  gridforge generate --preset arena --save
  gridforge inspect @map.txt
  gridforge positions @map.txt --top 5
  gridforge catalog list`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridforge/maps.db", "Path to the map catalog database")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development
	// This makes HONEYCOMB_GRIDFORGE_API_KEY available
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "err", err)
	}

	setupOTelEnv()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warn("Telemetry setup failed; continuing without observability", "err", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error("Telemetry shutdown failed", "err", err)
			}
		}()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GRIDFORGE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDFORGE_DATASET")
	if dataset == "" {
		dataset = "gridforge" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
