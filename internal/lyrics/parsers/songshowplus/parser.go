// Package songshowplus extracts songs from SongShow Plus (.sbsong) files.
//
// The format has no published schema. Fields are separated by runs of
// control characters, song blocks by '%', and an XML <Properties> block may
// trail the song. Parse reads it on a best-effort basis: it never fails and
// degrades to empty fields when the layout is not recognised.
package songshowplus

// Parse extracts the song held in the decoded text of a SongShow Plus file.
// It is safe for concurrent use.
func Parse(content string) Song {
	segments := splitSegments(content)
	attrs := parseAttributes(segments[0])

	sections, keywords := assemble(
		parseSections(segments),
		parseKeywords(segments[len(segments)-1]),
	)

	return Song{
		Title:     attrs.title,
		Artist:    attrs.artist,
		Copyright: attrs.copyright,
		CCLI:      attrs.ccli,
		Keywords:  keywords,
		Sections:  sections,
	}
}
