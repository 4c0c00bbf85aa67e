package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"menubuilder/internal/domain/repository"
	"menubuilder/internal/infra/persistence/memory"
	"menubuilder/internal/infra/persistence/snapshot"

	"github.com/spf13/cobra"
)

var (
	bucketURL string
	fileName  string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "menuctl",
	Short: "Inspect and export saved menu data",
	Long: `menuctl works on a saved menu data file without opening the editor.

Examples:
  menuctl validate                        check every record against the save rules
  menuctl export --out items.csv          dump the item collection as CSV
  menuctl stats                           print record counts per kind`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&bucketURL, "data", "file://./data",
		"bucket URL holding the data file")
	rootCmd.PersistentFlags().StringVar(&fileName, "file", "menu_data.json",
		"data file name inside the bucket")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore loads the saved snapshot into a fresh in-memory store. The
// returned close func releases the bucket.
func openStore(ctx context.Context, logger *slog.Logger) (repository.Store, func() error, error) {
	bucket, err := snapshot.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, err
	}

	snap, err := snapshot.NewStore(bucket, fileName, 0, logger).Load()
	if err != nil {
		bucket.Close()

		return nil, nil, err
	}

	store := memory.New()
	store.Load(snap)

	return store, bucket.Close, nil
}
