package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sukalov/sbsong/internal/db"
	"github.com/sukalov/sbsong/internal/logger"
)

var databaseURL string

var importCmd = &cobra.Command{
	Use:   "import <file.sbsong>...",
	Short: "Parse song files and store them in the songbook",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&databaseURL, "db", "", "songbook database (file path or libsql:// url)")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	url := cfg.DatabaseURL
	if databaseURL != "" {
		url = databaseURL
	}

	database, err := db.Open(ctx, url, cfg.AuthToken)
	if err != nil {
		return err
	}
	store := db.NewStore(database)
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	service, closeCache := newService(ctx)
	defer closeCache()

	failed := 0
	for _, path := range args {
		result, err := service.ExtractFile(ctx, path)
		if err != nil {
			logger.Error(fmt.Sprintf("%s: %v", path, err))
			failed++
			continue
		}

		id, err := store.SaveSong(ctx, result)
		if logger.LogWithErr(fmt.Sprintf("import %s", path), err) != nil {
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, result.Song.Title)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to import", failed, len(args))
	}
	logger.Success(fmt.Sprintf("imported %d songs", len(args)))
	return nil
}
