package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sukalov/sbsong/internal/config"
	"github.com/sukalov/sbsong/internal/logger"
	"github.com/sukalov/sbsong/internal/lyrics"
	"github.com/sukalov/sbsong/internal/redis"
)

var (
	cfg     *config.Config
	noCache bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "sbsong",
	Short:         "sbsong: SongShow Plus lyrics extractor",
	Long:          "Extract titles, authors, sections and keywords from SongShow Plus song files.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.SetDebug(cfg.Debug || debug)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "skip the Redis parse cache")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug logs")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
}

// newService builds the lyrics service, with the Redis cache when one is
// configured and reachable. The returned func releases the cache.
func newService(ctx context.Context) (*lyrics.Service, func()) {
	if noCache || !cfg.CacheEnabled() {
		return lyrics.NewService(nil), func() {}
	}

	cache, err := redis.NewDBManager(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Error(fmt.Sprintf("parse cache disabled: %v", err))
		return lyrics.NewService(nil), func() {}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		logger.Error(fmt.Sprintf("parse cache unreachable: %v", err))
		cache.Close()
		return lyrics.NewService(nil), func() {}
	}

	logger.Debug("parse cache enabled")
	return lyrics.NewService(cache), func() { cache.Close() }
}
