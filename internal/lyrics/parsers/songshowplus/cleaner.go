package songshowplus

import (
	"regexp"
	"strings"
)

var (
	slashRuns      = regexp.MustCompile(`/+`)
	lyricsNoise    = regexp.MustCompile(`/+|¶`)
	strayLowercase = regexp.MustCompile(`^[a-z]([A-Z])`)
	// a lone non-letter left on its own line after the last verse line
	trailingNoise = regexp.MustCompile(`(?i)[\n\r]+[^a-z]$`)
	titleNoise    = regexp.MustCompile(`(?i)[^a-z0-9)]$`)
)

// cleanTitle repairs encoding and drops one odd trailing character.
func cleanTitle(title string) string {
	return titleNoise.ReplaceAllString(RepairEncoding(title), "")
}

// cleanLyrics is shared by the section and keyword passes.
func cleanLyrics(lyrics string) string {
	lyrics = RepairEncoding(lyrics)
	lyrics = lyricsNoise.ReplaceAllString(lyrics, "")
	lyrics = strings.TrimSpace(lyrics)
	lyrics = strayLowercase.ReplaceAllString(lyrics, "$1")
	return trailingNoise.ReplaceAllString(lyrics, "")
}

func removeSlashes(s string) string {
	return slashRuns.ReplaceAllString(s, "")
}
