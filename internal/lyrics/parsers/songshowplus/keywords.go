package songshowplus

import (
	"regexp"
	"strings"
)

var (
	leadingNonWord = regexp.MustCompile(`^\W*([\s\S]+)`)
	keywordNoise   = strings.NewReplacer("\r", "", "\n", "", "\t", "")
)

// parseKeywords rereads the last segment as fields. The third field onward
// are keywords; the second is the true text of the final section.
func parseKeywords(lastSegment string) keywordBlock {
	fields := splitFields(lastSegment)
	if len(fields) < 3 {
		return keywordBlock{keywords: []string{}}
	}

	keywords := make([]string, 0, len(fields)-2)
	for _, f := range fields[2:] {
		keywords = append(keywords, RepairEncoding(keywordNoise.Replace(f)))
	}

	var lastLyrics string
	if m := leadingNonWord.FindStringSubmatch(fields[1]); m != nil {
		lastLyrics = m[1]
	}

	return keywordBlock{
		keywords:   keywords,
		lastLyrics: cleanLyrics(lastLyrics),
	}
}
