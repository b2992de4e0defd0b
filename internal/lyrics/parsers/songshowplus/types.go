package songshowplus

// Song is everything recovered from one SongShow Plus file.
type Song struct {
	Title     string    `json:"title" yaml:"title"`
	Artist    string    `json:"artist" yaml:"artist"`
	Copyright string    `json:"copyright" yaml:"copyright"`
	CCLI      string    `json:"ccli" yaml:"ccli"`
	Keywords  []string  `json:"keywords" yaml:"keywords"`
	Sections  []Section `json:"sections" yaml:"sections"`
}

// Section is a titled lyric block such as "Verse 1" or "Chorus".
type Section struct {
	Title  string `json:"title" yaml:"title"`
	Lyrics string `json:"lyrics" yaml:"lyrics"`
}

// keywordBlock is what the last segment yields when read as a keyword list.
type keywordBlock struct {
	keywords   []string
	lastLyrics string
}
