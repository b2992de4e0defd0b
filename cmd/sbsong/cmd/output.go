package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sukalov/sbsong/internal/lyrics"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// writeResults prints one document per result.
func writeResults(w io.Writer, format string, results []*lyrics.LyricsResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		for _, result := range results {
			if err := enc.Encode(result); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, result := range results {
			if err := enc.Encode(result); err != nil {
				return err
			}
		}
		return enc.Close()
	default:
		for i, result := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if _, err := io.WriteString(w, formatResult(result)); err != nil {
				return err
			}
		}
		return nil
	}
}

func formatResult(result *lyrics.LyricsResult) string {
	song := result.Song
	var sb strings.Builder

	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%-10s %s\n", name+":", value)
		}
	}
	field("Title", song.Title)
	field("Artist", song.Artist)
	field("Copyright", song.Copyright)
	field("CCLI", song.CCLI)
	field("Keywords", strings.Join(song.Keywords, ", "))

	for _, section := range song.Sections {
		fmt.Fprintf(&sb, "\n[%s]\n%s\n", section.Title, strings.ReplaceAll(section.Lyrics, "\r\n", "\n"))
	}
	return sb.String()
}
