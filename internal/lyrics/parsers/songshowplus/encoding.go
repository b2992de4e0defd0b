package songshowplus

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// mangledPattern matches any key of repairTable. Keys are tried longest
// first so a short sequence never claims the prefix of a longer one.
var mangledPattern = compileMangledPattern()

func compileMangledPattern() *regexp.Regexp {
	keys := make([]string, 0, len(repairTable))
	for k := range repairTable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})

	alternatives := make([]string, len(keys))
	for i, k := range keys {
		alternatives[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(strings.Join(alternatives, "|"))
}

// RepairEncoding replaces every UTF-8 sequence that was misread as
// Windows-1252 with the character it encodes. Text without such sequences
// is returned unchanged.
func RepairEncoding(s string) string {
	if s == "" {
		return s
	}
	return mangledPattern.ReplaceAllStringFunc(s, func(m string) string {
		// a miss yields "" rather than passing garbage through
		return repairTable[m]
	})
}
