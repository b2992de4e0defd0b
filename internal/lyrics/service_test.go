package lyrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukalov/sbsong/internal/logger"
	"github.com/sukalov/sbsong/internal/lyrics/parsers/songshowplus"
)

const sampleFile = "\x0112\x02Give Us Clean Hands\x03Hall, Charlie\x04 2000 worshiptogether.com songs$\x052060208" +
	"%\x00\x01X\x02\x08Verse 1\x01\x00We bow our hearts\r\nwe bend our knees" +
	"%\x00\x01X\x02\x08Chorus 1\x01\x00Give us clean hands\x00\x0cPrayer\x00\x08Repentance\x00"

type memoryCache struct {
	songs  map[string]songshowplus.Song
	getErr error
	setErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{songs: map[string]songshowplus.Song{}}
}

func (c *memoryCache) GetSong(_ context.Context, hash string) (*songshowplus.Song, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	song, ok := c.songs[hash]
	if !ok {
		return nil, false, nil
	}
	return &song, true, nil
}

func (c *memoryCache) SetSong(_ context.Context, hash string, song songshowplus.Song) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.songs[hash] = song
	return nil
}

func quietLogs(t *testing.T) {
	t.Helper()
	logger.SetOutput(nil)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
}

func fixedClock(s *Service) time.Time {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return now
}

func TestExtractBytes(t *testing.T) {
	quietLogs(t)
	s := NewService(nil)
	now := fixedClock(s)

	result, err := s.ExtractBytes(context.Background(), "Give Us Clean Hands.sbsong", []byte(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, "Give Us Clean Hands.sbsong", result.Source)
	assert.Equal(t, FormatSongShowPlus, result.Format)
	assert.Equal(t, ContentHash([]byte(sampleFile)), result.Hash)
	assert.Equal(t, now, result.ParsedAt)
	assert.False(t, result.Cached)
	assert.Equal(t, songshowplus.Song{
		Title:     "Give Us Clean Hands",
		Artist:    "Hall, Charlie",
		Copyright: "2000 worshiptogether.com songs",
		CCLI:      "2060208",
		Keywords:  []string{"Prayer", "Repentance"},
		Sections: []songshowplus.Section{
			{Title: "Verse 1", Lyrics: "We bow our hearts\r\nwe bend our knees"},
			{Title: "Chorus 1", Lyrics: "Give us clean hands"},
		},
	}, result.Song)
}

func TestExtractBytes_Unsupported(t *testing.T) {
	quietLogs(t)

	_, err := NewService(nil).ExtractBytes(context.Background(), "song.txt", []byte("la la"))
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestExtractBytes_InvalidUTF8(t *testing.T) {
	quietLogs(t)
	data := []byte("\x01Devuelveme El Gozo\x02%\x01X\x02Chorus\x03Te necesito Dios\x04Tahoma\x05\xc1?")

	result, err := NewService(nil).ExtractBytes(context.Background(), "Devuelveme El Gozo.SBSONG", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tahoma", "�?"}, result.Song.Keywords)
}

func TestExtractBytes_Cache(t *testing.T) {
	quietLogs(t)
	cache := newMemoryCache()
	s := NewService(cache)

	first, err := s.ExtractBytes(context.Background(), "a.sbsong", []byte(sampleFile))
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.sets)

	second, err := s.ExtractBytes(context.Background(), "b.sbsong", []byte(sampleFile))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Song, second.Song)
	assert.Equal(t, "b.sbsong", second.Source)
	assert.Equal(t, 1, cache.sets)
}

func TestExtractBytes_BrokenCacheStillParses(t *testing.T) {
	quietLogs(t)
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")

	result, err := NewService(cache).ExtractBytes(context.Background(), "a.sbsong", []byte(sampleFile))
	require.NoError(t, err)
	assert.Equal(t, "Give Us Clean Hands", result.Song.Title)
}

func TestExtractFile(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "Give Us Clean Hands.sbsong")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0644))

	result, err := NewService(nil).ExtractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Give Us Clean Hands.sbsong", result.Source)

	_, err = NewService(nil).ExtractFile(context.Background(), filepath.Join(dir, "missing.sbsong"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewService(nil).ExtractFile(context.Background(), filepath.Join(dir, "notes.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte(sampleFile))
	assert.Len(t, h, 64)
	assert.Equal(t, h, ContentHash([]byte(sampleFile)))
	assert.NotEqual(t, h, ContentHash([]byte("other")))
}
