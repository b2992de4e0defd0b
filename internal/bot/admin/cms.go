package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/sbsong/internal/bot"
	"github.com/sukalov/sbsong/internal/db"
	"github.com/sukalov/sbsong/internal/lyrics/parsers/songshowplus"
)

const (
	showSongPrefix = "show_song"
	maxResults     = 10
	// Telegram rejects messages over 4096 characters
	maxMessageRunes = 4000
)

type SearchHandler struct {
	admins         map[string]bool
	store          *db.Store
	mu             sync.Mutex
	awaitingSearch map[int64]bool
}

func NewSearchHandler(adminUsernames []string, store *db.Store) *SearchHandler {
	return &SearchHandler{
		admins:         adminSet(adminUsernames),
		store:          store,
		awaitingSearch: make(map[int64]bool),
	}
}

func (h *SearchHandler) findSongHandler(b *bot.Bot, update tgbotapi.Update) error {
	if !isAdmin(h.admins, update.Message.From) {
		return b.SendMessage(update.Message.Chat.ID, "вы не админ")
	}

	h.mu.Lock()
	h.awaitingSearch[update.Message.Chat.ID] = true
	h.mu.Unlock()
	return b.SendMessage(update.Message.Chat.ID, "здесь можно найти песню. напишите название песни или автора")
}

// takeAwaiting reports whether chatID asked for a search and clears the flag.
func (h *SearchHandler) takeAwaiting(chatID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	awaiting := h.awaitingSearch[chatID]
	delete(h.awaitingSearch, chatID)
	return awaiting
}

func (h *SearchHandler) messageHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if message.Document != nil || message.IsCommand() || !isAdmin(h.admins, message.From) {
		return nil
	}

	if !h.takeAwaiting(message.Chat.ID) {
		return b.SendMessage(message.Chat.ID, "ничего не понятно. если вы пытаетесь найти песню, сначала нажмите /findsong")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := h.store.SearchSongs(ctx, message.Text, maxResults+1)
	if err != nil {
		return fmt.Errorf("failed to search songs: %w", err)
	}

	if len(results) == 0 {
		return b.SendMessage(message.Chat.ID, "ничего не найдено")
	}

	text, keyboard := searchResults(results)
	return b.SendMessageWithButtons(message.Chat.ID, text, keyboard)
}

func searchResults(results []db.Song) (string, tgbotapi.InlineKeyboardMarkup) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, song := range results {
		if len(rows) >= maxResults {
			break
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(db.FormatSongName(song), showSongPrefix+":"+song.ID),
		))
	}

	text := "найденные песни:"
	if len(results) > maxResults {
		text += fmt.Sprintf("\n(показаны первые %d)", maxResults)
	}
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *SearchHandler) callbackHandler(b *bot.Bot, update tgbotapi.Update) error {
	query := update.CallbackQuery
	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID
	if !isAdmin(h.admins, query.From) {
		return b.SendMessage(chatID, "вы не админ")
	}

	_, songID, _ := strings.Cut(query.Data, ":")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	song, err := h.store.FindSongByID(ctx, songID)
	if errors.Is(err, db.ErrSongNotFound) {
		return b.SendMessage(chatID, "песня не найдена")
	}
	if err != nil {
		return err
	}

	if err := h.store.IncrementSongCounter(ctx, songID); err != nil {
		return err
	}

	return b.SendMessage(chatID, formatSong(song))
}

func formatSong(song db.Song) string {
	var sb strings.Builder
	sb.WriteString(db.FormatSongName(song))
	if song.CCLI.Valid {
		fmt.Fprintf(&sb, "\nccli: %s", song.CCLI.String)
	}
	if song.Copyright.Valid {
		fmt.Fprintf(&sb, "\n© %s", song.Copyright.String)
	}
	for _, section := range song.Sections {
		sb.WriteString("\n\n")
		sb.WriteString(formatSection(section))
	}
	return truncateRunes(sb.String(), maxMessageRunes)
}

func formatSection(section songshowplus.Section) string {
	return fmt.Sprintf("[%s]\n%s", section.Title, strings.ReplaceAll(section.Lyrics, "\r\n", "\n"))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
