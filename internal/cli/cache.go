package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/primes/internal/cache"
	"github.com/dshills/primes/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the prime cache",
}

// cacheStats is printed by cache show.
type cacheStats struct {
	Location string `json:"location"`
	Size     int    `json:"size"`
	Max      uint64 `json:"max"`
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached prime",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		ctx := context.Background()
		store, closeStore, err := openStore(ctx, cfg)
		defer closeStore()
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Cache cleared.")
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		ctx := context.Background()
		store, closeStore, err := openStore(ctx, cfg)
		defer closeStore()
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		// Read only; the handle is never released so nothing is rewritten.
		h, err := cache.Open(ctx, store)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(cacheStats{
			Location: store.Location(),
			Size:     h.Len(),
			Max:      h.Max(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheShowCmd)

	for _, cmd := range []*cobra.Command{cacheClearCmd, cacheShowCmd} {
		cmd.Flags().StringVar(&flagStore, "store", "", "Cache store (file, redis)")
		cmd.Flags().StringVar(&flagCacheFile, "cache-file", "", "Cache file path for the file store")
	}
}
