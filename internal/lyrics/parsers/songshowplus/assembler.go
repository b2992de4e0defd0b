package songshowplus

import (
	"strings"
	"unicode/utf8"
)

// allFoundLyricsTitle names the section built when only the keyword pass
// found any lyrics.
const allFoundLyricsTitle = "All Found Lyrics"

// assemble reconciles the section pass with the keyword pass.
func assemble(sections []Section, block keywordBlock) ([]Section, []string) {
	keywords := []string{}

	switch {
	case block.lastLyrics == "":
		// nothing recovered; keep the section pass as is

	case len(sections) == 0 && joinedLength(block.keywords) > utf8.RuneCountInString(block.lastLyrics):
		// the fields came out the other way round: the long run is the lyrics
		keywords = []string{block.lastLyrics}
		sections = []Section{{Lyrics: removeSlashes(strings.Join(block.keywords, ""))}}

	default:
		keywords = block.keywords
		if len(sections) > 0 {
			sections = withLastLyrics(sections, block.lastLyrics)
		} else {
			sections = []Section{{Title: allFoundLyricsTitle, Lyrics: removeSlashes(block.lastLyrics)}}
		}
	}

	return dropEchoedTitles(sections), keywords
}

// withLastLyrics returns a copy of sections whose final entry carries lyrics.
// The section pass reads keyword bytes into the last block; the keyword
// pass knows where they start.
func withLastLyrics(sections []Section, lyrics string) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	out[len(out)-1].Lyrics = lyrics
	return out
}

// dropEchoedTitles removes sections whose lyrics just repeat the title.
func dropEchoedTitles(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if normalize(s.Title) == normalize(s.Lyrics) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func joinedLength(parts []string) int {
	n := 0
	for _, p := range parts {
		n += utf8.RuneCountInString(p)
	}
	return n
}
