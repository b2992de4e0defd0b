package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sukalov/sbsong/internal/lyrics"
	"github.com/sukalov/sbsong/internal/lyrics/parsers/songshowplus"
	"github.com/sukalov/sbsong/internal/utils/e"
)

var ErrSongNotFound = errors.New("song not found")

var schema = []string{
	`CREATE TABLE IF NOT EXISTS songs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT,
		copyright TEXT,
		ccli TEXT,
		source TEXT NOT NULL,
		content_hash TEXT NOT NULL UNIQUE,
		imported_at INTEGER NOT NULL,
		counter INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS song_sections (
		song_id TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		lyrics TEXT NOT NULL,
		PRIMARY KEY (song_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS song_keywords (
		song_id TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		keyword TEXT NOT NULL,
		PRIMARY KEY (song_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS songs_title_idx ON songs(title)`,
}

type Song struct {
	ID          string
	Title       string
	Artist      sql.NullString
	Copyright   sql.NullString
	CCLI        sql.NullString
	Source      string
	ContentHash string
	ImportedAt  time.Time
	Counter     int
	Keywords    []string
	Sections    []songshowplus.Section
}

// Store keeps imported songs.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

func (s *Store) Close() error {
	return e.WrapIfErr("failed to close songbook", s.db.Close())
}

// Migrate creates the songbook tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate songbook: %w", err)
		}
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveSong stores a parsed song and returns its id. A song whose content hash
// is already stored is not inserted again; the existing id is returned.
func (s *Store) SaveSong(ctx context.Context, result *lyrics.LyricsResult) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM songs WHERE content_hash = ?`, result.Hash).Scan(&existing)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("error checking song existence: %w", err)
	}

	id := uuid.NewString()
	song := result.Song
	_, err = tx.ExecContext(ctx, `
		INSERT INTO songs (
			id,
			title,
			artist,
			copyright,
			ccli,
			source,
			content_hash,
			imported_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, song.Title, nullable(song.Artist), nullable(song.Copyright), nullable(song.CCLI),
		result.Source, result.Hash, result.ParsedAt.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert song: %w", err)
	}

	for i, section := range song.Sections {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO song_sections (song_id, position, title, lyrics) VALUES (?, ?, ?, ?)`,
			id, i, section.Title, section.Lyrics)
		if err != nil {
			return "", fmt.Errorf("failed to insert section %d: %w", i, err)
		}
	}

	for i, keyword := range song.Keywords {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO song_keywords (song_id, position, keyword) VALUES (?, ?, ?)`,
			id, i, keyword)
		if err != nil {
			return "", fmt.Errorf("failed to insert keyword %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit song: %w", err)
	}
	return id, nil
}

const songColumns = `id, title, artist, copyright, ccli, source, content_hash, imported_at, counter`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (Song, error) {
	var song Song
	var importedAt int64
	err := row.Scan(&song.ID, &song.Title, &song.Artist, &song.Copyright, &song.CCLI,
		&song.Source, &song.ContentHash, &importedAt, &song.Counter)
	if err != nil {
		return Song{}, err
	}
	song.ImportedAt = time.Unix(importedAt, 0).UTC()
	return song, nil
}

// FindSongByID loads a song with its sections and keywords.
func (s *Store) FindSongByID(ctx context.Context, id string) (Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE id = ?`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Song{}, fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	if err != nil {
		return Song{}, fmt.Errorf("failed to load song %s: %w", id, err)
	}

	sections, err := s.db.QueryContext(ctx,
		`SELECT title, lyrics FROM song_sections WHERE song_id = ? ORDER BY position`, id)
	if err != nil {
		return Song{}, fmt.Errorf("failed to load sections: %w", err)
	}
	defer sections.Close()
	song.Sections = []songshowplus.Section{}
	for sections.Next() {
		var section songshowplus.Section
		if err := sections.Scan(&section.Title, &section.Lyrics); err != nil {
			return Song{}, fmt.Errorf("error scanning section: %w", err)
		}
		song.Sections = append(song.Sections, section)
	}
	if err := sections.Err(); err != nil {
		return Song{}, fmt.Errorf("error during sections iteration: %w", err)
	}

	keywords, err := s.db.QueryContext(ctx,
		`SELECT keyword FROM song_keywords WHERE song_id = ? ORDER BY position`, id)
	if err != nil {
		return Song{}, fmt.Errorf("failed to load keywords: %w", err)
	}
	defer keywords.Close()
	song.Keywords = []string{}
	for keywords.Next() {
		var keyword string
		if err := keywords.Scan(&keyword); err != nil {
			return Song{}, fmt.Errorf("error scanning keyword: %w", err)
		}
		song.Keywords = append(song.Keywords, keyword)
	}
	if err := keywords.Err(); err != nil {
		return Song{}, fmt.Errorf("error during keywords iteration: %w", err)
	}

	return song, nil
}

// SearchSongs matches query against titles and artists, case-insensitively
// for ASCII letters.
func (s *Store) SearchSongs(ctx context.Context, query string, limit int) ([]Song, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	return s.querySongs(ctx,
		`SELECT `+songColumns+` FROM songs
		WHERE lower(title) LIKE ? OR lower(coalesce(artist, '')) LIKE ?
		ORDER BY title LIMIT ?`,
		pattern, pattern, limit)
}

// ListSongs returns songs ordered by title.
func (s *Store) ListSongs(ctx context.Context, limit int) ([]Song, error) {
	return s.querySongs(ctx, `SELECT `+songColumns+` FROM songs ORDER BY title LIMIT ?`, limit)
}

func (s *Store) querySongs(ctx context.Context, query string, args ...any) ([]Song, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			log.Printf("error scanning row: %v", err)
			continue
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return songs, nil
}

func (s *Store) IncrementSongCounter(ctx context.Context, songID string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE songs SET counter = counter + 1 WHERE id = ?`, songID)
	if err != nil {
		return fmt.Errorf("failed to increment song counter: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSongNotFound, songID)
	}

	return nil
}

func FormatSongName(song Song) string {
	var parts []string
	if song.Artist.Valid {
		parts = append(parts, song.Artist.String+" - ")
	}
	parts = append(parts, song.Title)

	return strings.TrimSpace(strings.Join(parts, ""))
}
