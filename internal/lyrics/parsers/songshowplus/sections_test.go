package songshowplus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// block renders one lyric segment the way SongShow Plus lays it out.
func block(title, lyrics, tail string) string {
	return "\x00\x01X\x02\x08" + title + "\x01\x00" + lyrics + tail
}

func TestParseSections(t *testing.T) {
	segments := []string{
		"\x0112\x02Title",
		block("Verse 1", "Line one\r\nLine two", "\x00\x00"),
		"no structure here",
		block("Chorus:", "...Sing it\r\nloud", ""),
		block("Blank", "\x00\x00", ""),
	}

	got := parseSections(segments)

	assert.Equal(t, []Section{
		{Title: "Verse 1", Lyrics: "Line one\r\nLine two"},
		{Title: "Chorus", Lyrics: "Sing it\r\nloud"},
	}, got)
}

func TestParseSections_SkipsAttributeSegment(t *testing.T) {
	assert.Empty(t, parseSections([]string{block("Verse 1", "Words", "")}))
	assert.NotNil(t, parseSections(nil))
}

func TestParseSections_TitleStopsAtFirstControlRun(t *testing.T) {
	got := parseSections([]string{"", "\x01X\x02Bridge\x03\x04Lord\x05I need You"})

	assert.Equal(t, []Section{{Title: "Bridge", Lyrics: "LordI need You"}}, got)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Verse 1", "Verse 1"},
		{"Verse 1:", "Verse 1"},
		{"Jesus Saves (2)", "Jesus Saves (2)"},
		{"Verse 3r", "Verse 3r"},
		{"Pre-chorus 1.", "Pre-chorus 1"},
		{"CoraÃ§Ã£o", "Coração"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanTitle(tt.in), "title %q", tt.in)
	}
}

func TestCleanLyrics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Be near O God\r\nOur good", "Be near O God\r\nOur good"},
		{"slashes and pilcrows", "Give us//clean/ hands¶", "Give usclean hands"},
		{"surrounding space", "  \r\nMy good \r\n", "My good"},
		{"stray lowercase lead", "xYou are the Lord", "You are the Lord"},
		{"lowercase lead kept", "and You are", "and You are"},
		{"trailing noise line", "In victory\r\n'", "In victory"},
		{"two trailing characters kept", "Hallelujah (repeat)\r\n'(", "Hallelujah (repeat)\r\n'("},
		{"trailing letter kept", "One\r\nA", "One\r\nA"},
		{"repaired", "SeÃ±or", "Señor"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanLyrics(tt.in))
		})
	}
}
