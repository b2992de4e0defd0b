package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/sukalov/sbsong/internal/db"
)

var (
	listQuery string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List songs stored in the songbook",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&databaseURL, "db", "", "songbook database (file path or libsql:// url)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "only songs whose title or artist contains this")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "maximum number of songs")
}

func runList(cmd *cobra.Command, args []string) error {
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

	var songs []db.Song
	if listQuery != "" {
		songs, err = store.SearchSongs(ctx, listQuery, listLimit)
	} else {
		songs, err = store.ListSongs(ctx, listLimit)
	}
	if err != nil {
		return err
	}

	dim := color.New(color.FgHiBlack)
	for _, song := range songs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", dim.Sprint(song.ID), db.FormatSongName(song))
	}
	return nil
}
