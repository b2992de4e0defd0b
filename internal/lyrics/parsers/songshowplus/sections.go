package songshowplus

import (
	"regexp"
	"strings"
)

// sectionPattern reads a lyric segment: control run, one marker character,
// control run, the title, control run, an optional non-word lead-in, then
// the lyrics up to the end of the segment.
var sectionPattern = regexp.MustCompile(
	`(?m)^` + controlClass + `+[^\r\n]` + controlClass + `+([^\r\n]+?)` + controlClass + `+\W*([\s\S]+)`,
)

// parseSections turns segments 1..n into sections, skipping any whose
// lyrics come out empty.
func parseSections(segments []string) []Section {
	sections := []Section{}
	if len(segments) < 2 {
		return sections
	}

	for _, raw := range segments[1:] {
		var title, lyrics string
		if m := sectionPattern.FindStringSubmatch(raw); m != nil {
			title = strings.TrimSpace(stripControl(m[1]))
			lyrics = strings.TrimSpace(stripControl(m[2]))
		}

		lyrics = cleanLyrics(lyrics)
		if lyrics == "" {
			continue
		}
		sections = append(sections, Section{Title: cleanTitle(title), Lyrics: lyrics})
	}
	return sections
}
