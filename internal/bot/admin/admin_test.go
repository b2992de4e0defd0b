package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukalov/sbsong/internal/db"
	"github.com/sukalov/sbsong/internal/logger"
	"github.com/sukalov/sbsong/internal/lyrics"
	"github.com/sukalov/sbsong/internal/lyrics/parsers/songshowplus"
)

func init() {
	logger.SetOutput(nil)
}

func TestIsAdmin(t *testing.T) {
	admins := adminSet([]string{"@sukalov", "olakotr"})

	assert.True(t, isAdmin(admins, &tgbotapi.User{UserName: "sukalov"}))
	assert.True(t, isAdmin(admins, &tgbotapi.User{UserName: "olakotr"}))
	assert.False(t, isAdmin(admins, &tgbotapi.User{UserName: "stranger"}))
	assert.False(t, isAdmin(admins, nil))
}

func TestImportSummary(t *testing.T) {
	summary := importSummary(&lyrics.LyricsResult{
		Song: songshowplus.Song{
			Title:    "Be Near",
			Artist:   "Shane Barnard",
			CCLI:     "3798438",
			Keywords: []string{"Longing", "Security"},
			Sections: make([]songshowplus.Section, 6),
		},
	})

	assert.Equal(t, "песня добавлена: Be Near\nавтор: Shane Barnard\nccli: 3798438\nчастей: 6\nтеги: Longing, Security", summary)

	bare := importSummary(&lyrics.LyricsResult{Song: songshowplus.Song{Title: "Untitled"}})
	assert.Equal(t, "песня добавлена: Untitled\nчастей: 0", bare)
}

func TestSearchResults(t *testing.T) {
	var songs []db.Song
	for i := 0; i < maxResults+1; i++ {
		songs = append(songs, db.Song{ID: string(rune('a' + i)), Title: "Song"})
	}
	songs[0].Artist = sql.NullString{String: "Artist", Valid: true}

	text, keyboard := searchResults(songs)
	assert.Contains(t, text, "показаны первые 10")
	require.Len(t, keyboard.InlineKeyboard, maxResults)
	assert.Equal(t, "Artist - Song", keyboard.InlineKeyboard[0][0].Text)
	require.NotNil(t, keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "show_song:a", *keyboard.InlineKeyboard[0][0].CallbackData)

	text, keyboard = searchResults(songs[:2])
	assert.Equal(t, "найденные песни:", text)
	assert.Len(t, keyboard.InlineKeyboard, 2)
}

func TestTakeAwaiting(t *testing.T) {
	h := NewSearchHandler(nil, nil)
	assert.False(t, h.takeAwaiting(1))

	h.awaitingSearch[1] = true
	assert.True(t, h.takeAwaiting(1))
	assert.False(t, h.takeAwaiting(1))
}

func TestFormatSong(t *testing.T) {
	song := db.Song{
		Title:     "Be Near",
		Artist:    sql.NullString{String: "Shane Barnard", Valid: true},
		CCLI:      sql.NullString{String: "3798438", Valid: true},
		Copyright: sql.NullString{String: "2003 Waiting Room Music", Valid: true},
		Sections: []songshowplus.Section{
			{Title: "Verse 1", Lyrics: "You are all\r\nBig and small"},
		},
	}

	assert.Equal(t,
		"Shane Barnard - Be Near\nccli: 3798438\n© 2003 Waiting Room Music\n\n[Verse 1]\nYou are all\nBig and small",
		formatSong(song))
}

func TestFormatSong_Truncates(t *testing.T) {
	song := db.Song{
		Title:    "Long",
		Sections: []songshowplus.Section{{Title: "Verse", Lyrics: strings.Repeat("я", 5000)}},
	}

	formatted := formatSong(song)
	assert.Equal(t, maxMessageRunes, utf8.RuneCountInString(formatted))
	assert.True(t, strings.HasSuffix(formatted, "…"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "ab…", truncateRunes("abcdef", 3))
}

func TestPublisher_Publish(t *testing.T) {
	var got map[string]interface{}
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := NewPublisher(server.URL, "secret").Publish(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, "token secret", auth)
	assert.Equal(t, "songbook-updated", got["event_type"])
	assert.Equal(t, map[string]interface{}{"unit": "test"}, got["client_payload"])
}

func TestPublisher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	err := NewPublisher(server.URL, "wrong").Publish(context.Background(), "test")
	assert.ErrorContains(t, err, "status 401")
}

func TestPublisher_NotConfigured(t *testing.T) {
	err := NewPublisher("", "").Publish(context.Background(), "test")
	assert.ErrorIs(t, err, errPublishNotConfigured)
}
