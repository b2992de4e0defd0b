package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sukalov/sbsong/internal/lyrics"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file.sbsong>...",
	Short: "Print the lyrics and metadata of song files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", formatText, "output format: text, json or yaml")
}

func runParse(cmd *cobra.Command, args []string) error {
	if !validFormat(parseFormat) {
		return fmt.Errorf("unknown format %q", parseFormat)
	}

	ctx := cmd.Context()
	service, closeCache := newService(ctx)
	defer closeCache()

	results := make([]*lyrics.LyricsResult, 0, len(args))
	for _, path := range args {
		result, err := service.ExtractFile(ctx, path)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	return writeResults(cmd.OutOrStdout(), parseFormat, results)
}
