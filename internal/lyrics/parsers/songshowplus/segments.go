package songshowplus

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// propertiesMarker starts the XML metadata block some files carry at the end.
	propertiesMarker = "<Properties>"
	segmentDelimiter = "%"

	// controlClass matches the invisible bytes SongShow Plus writes between fields.
	controlClass = `[\x{A0}\x00-\x09\x0B\x0C\x0E-\x1F\x7F]`
)

var controlRun = regexp.MustCompile(controlClass + `+`)

// splitSegments drops trailing metadata and cuts the rest into raw segments.
// Segment 0 holds the song attributes; the last one also carries keywords.
func splitSegments(content string) []string {
	if i := strings.Index(content, propertiesMarker); i >= 0 {
		content = content[:i]
	}
	return strings.Split(content, segmentDelimiter)
}

// splitFields breaks a raw segment on control-character runs and keeps only
// pieces longer than one character once trimmed.
func splitFields(raw string) []string {
	var fields []string
	for _, piece := range controlRun.Split(raw, -1) {
		if utf8.RuneCountInString(strings.TrimSpace(piece)) > 1 {
			fields = append(fields, piece)
		}
	}
	return fields
}

func stripControl(s string) string {
	return controlRun.ReplaceAllString(s, "")
}

// fieldAt returns fields[i], or "" past the end.
func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
