package songshowplus

import (
	"regexp"
	"strings"
)

// leadingNumber flags the numeric record header that sometimes precedes the title.
var leadingNumber = regexp.MustCompile(`[0-9]{1,4}`)

type attributes struct {
	title     string
	artist    string
	copyright string
	ccli      string
}

// parseAttributes reads title, artist, copyright and CCLI number from segment 0.
func parseAttributes(segment string) attributes {
	fields := splitFields(segment)
	if len(fields) > 0 && leadingNumber.MatchString(fields[0]) {
		fields = fields[1:]
	}

	title := strings.ReplaceAll(fieldAt(fields, 0), "$", "")
	copyright := strings.TrimSuffix(strings.TrimSpace(fieldAt(fields, 2)), "$")

	return attributes{
		title:     strings.TrimSpace(RepairEncoding(title)),
		artist:    strings.TrimSpace(RepairEncoding(fieldAt(fields, 1))),
		copyright: strings.TrimSpace(RepairEncoding(copyright)),
		ccli:      strings.TrimSpace(RepairEncoding(fieldAt(fields, 3))),
	}
}
