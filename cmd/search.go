package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tunebridge/core/config"
	"tunebridge/core/logger"
	"tunebridge/feature/catalog"

	"github.com/spf13/cobra"
)

var searchKind string

// searchCmd runs a catalog search from the terminal, printing the canonical
// records exactly as the HTTP API would return them.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the upstream catalog from the terminal",
	Long: `Search the upstream catalog and print the reconciled canonical records.

Examples:
  # Search tracks (default kind)
  tunebridge search "blue train"

  # Search other entity kinds
  tunebridge search --kind albums "blue train"
  tunebridge search --kind artists coltrane
  tunebridge search --kind playlists jazz`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "tracks", "Entity kind to search (tracks, albums, artists, playlists)")
	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc := catalog.NewService(catalog.NewClient(cfg.Catalog), l)

	var results any
	switch searchKind {
	case "tracks":
		results, err = svc.SearchTracks(ctx, query)
	case "albums":
		results, err = svc.SearchAlbums(ctx, query)
	case "artists":
		results, err = svc.SearchArtists(ctx, query)
	case "playlists":
		results, err = svc.SearchPlaylists(ctx, query)
	default:
		return fmt.Errorf("unknown search kind: %s", searchKind)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
