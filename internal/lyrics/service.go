package lyrics

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sukalov/sbsong/internal/logger"
	"github.com/sukalov/sbsong/internal/lyrics/parsers/songshowplus"
	"github.com/sukalov/sbsong/internal/utils/e"
	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding/unicode"
)

const (
	FormatSongShowPlus    = "songshowplus"
	songShowPlusExtension = ".sbsong"
)

var ErrUnsupportedSource = errors.New("unsupported lyrics source")

// LyricsResult represents a parsed song file
type LyricsResult struct {
	Source   string            `json:"source" yaml:"source"`
	Format   string            `json:"format" yaml:"format"`
	Hash     string            `json:"hash" yaml:"hash"`
	Song     songshowplus.Song `json:"song" yaml:"song"`
	ParsedAt time.Time         `json:"parsed_at" yaml:"parsed_at"`
	Cached   bool              `json:"cached" yaml:"cached"`
}

// SongCache stores parsed songs by content hash.
type SongCache interface {
	GetSong(ctx context.Context, hash string) (*songshowplus.Song, bool, error)
	SetSong(ctx context.Context, hash string, song songshowplus.Song) error
}

// Service handles lyrics extraction for supported file formats
type Service struct {
	cache SongCache
	now   func() time.Time
}

// NewService creates a new lyrics service. cache may be nil.
func NewService(cache SongCache) *Service {
	return &Service{
		cache: cache,
		now:   time.Now,
	}
}

// IsSupported reports whether name has an extension the service can parse.
func IsSupported(name string) bool {
	return strings.EqualFold(filepath.Ext(name), songShowPlusExtension)
}

// ContentHash is the BLAKE3 digest of data, hex encoded.
func ContentHash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ExtractFile reads and parses the file at path.
func (s *Service) ExtractFile(ctx context.Context, path string) (*LyricsResult, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error(fmt.Sprintf("ExtractFile: failed to read %s\nError: %v", path, err))
		return nil, e.Wrap("failed to read file", err)
	}

	return s.ExtractBytes(ctx, filepath.Base(path), data)
}

// ExtractBytes parses the raw contents of a file called name.
func (s *Service) ExtractBytes(ctx context.Context, name string, data []byte) (*LyricsResult, error) {
	logger.Debug(fmt.Sprintf("ExtractBytes called for %s (%d bytes)", name, len(data)))

	if !IsSupported(name) {
		logger.Error(fmt.Sprintf("Unsupported lyrics source: %s", name))
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, name)
	}

	result := &LyricsResult{
		Source: name,
		Format: FormatSongShowPlus,
		Hash:   ContentHash(data),
	}

	if song, ok := s.cachedSong(ctx, result.Hash); ok {
		logger.Debug(fmt.Sprintf("ExtractBytes: cache hit for %s\nHash: %s", name, result.Hash))
		result.Song = *song
		result.Cached = true
		result.ParsedAt = s.now()
		return result, nil
	}

	content, err := decode(data)
	if err != nil {
		return nil, e.Wrap("failed to decode file", err)
	}

	result.Song = songshowplus.Parse(content)
	result.ParsedAt = s.now()

	logger.Debug(fmt.Sprintf("ExtractBytes: parsed %s\nTitle: %s\nSections: %d\nKeywords: %d",
		name, result.Song.Title, len(result.Song.Sections), len(result.Song.Keywords)))

	s.storeSong(ctx, result.Hash, result.Song)

	return result, nil
}

// cachedSong never fails: a broken cache only costs a re-parse.
func (s *Service) cachedSong(ctx context.Context, hash string) (*songshowplus.Song, bool) {
	if s.cache == nil {
		return nil, false
	}
	song, found, err := s.cache.GetSong(ctx, hash)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read parse cache\nHash: %s\nError: %v", hash, err))
		return nil, false
	}
	return song, found
}

func (s *Service) storeSong(ctx context.Context, hash string, song songshowplus.Song) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetSong(ctx, hash, song); err != nil {
		logger.Error(fmt.Sprintf("Failed to write parse cache\nHash: %s\nError: %v", hash, err))
	}
}

// decode reads data as UTF-8, turning invalid bytes into U+FFFD.
func decode(data []byte) (string, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
