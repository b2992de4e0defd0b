package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/sbsong/internal/bot"
	"github.com/sukalov/sbsong/internal/config"
	"github.com/sukalov/sbsong/internal/db"
	"github.com/sukalov/sbsong/internal/logger"
	"github.com/sukalov/sbsong/internal/lyrics"
)

// UploadCounter records who uploaded which file.
type UploadCounter interface {
	IncrementUploadCount(ctx context.Context, username string, hash string) error
}

type AdminHandlers struct {
	admins  map[string]bool
	service *lyrics.Service
	store   *db.Store
	uploads UploadCounter
}

func NewAdminHandlers(adminUsernames []string, service *lyrics.Service, store *db.Store, uploads UploadCounter) *AdminHandlers {
	return &AdminHandlers{
		admins:  adminSet(adminUsernames),
		service: service,
		store:   store,
		uploads: uploads,
	}
}

func adminSet(usernames []string) map[string]bool {
	admins := make(map[string]bool)
	for _, username := range usernames {
		admins[strings.TrimPrefix(username, "@")] = true
	}
	return admins
}

func isAdmin(admins map[string]bool, user *tgbotapi.User) bool {
	return user != nil && admins[user.UserName]
}

func (h *AdminHandlers) startHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if !isAdmin(h.admins, message.From) {
		return b.SendMessage(message.Chat.ID, "вы не админ")
	}
	return b.SendMessage(message.Chat.ID,
		"привет! пришлите файл .sbsong, и я добавлю песню в сонгбук.\n\n"+
			"/findsong — найти песню\n/publish — обновить сайт сонгбука")
}

// documentHandler imports an uploaded SongShow Plus file.
func (h *AdminHandlers) documentHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if message.Document == nil {
		return nil
	}
	if !isAdmin(h.admins, message.From) {
		return b.SendMessage(message.Chat.ID, "вы не админ")
	}

	name := message.Document.FileName
	if !lyrics.IsSupported(name) {
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("не понимаю файл %s. нужен .sbsong", name))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	data, err := b.DownloadFile(ctx, message.Document.FileID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to download %s: %v", name, err))
		return b.SendMessage(message.Chat.ID, "не получилось скачать файл")
	}

	result, err := h.service.ExtractBytes(ctx, name, data)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse %s: %v", name, err))
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("ошибка при разборе файла: %v", err))
	}

	id, err := h.store.SaveSong(ctx, result)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save %s: %v", name, err))
		return b.SendMessage(message.Chat.ID, "ошибка при сохранении песни")
	}

	if h.uploads != nil {
		if err := h.uploads.IncrementUploadCount(ctx, message.From.UserName, result.Hash); err != nil {
			logger.Debug(err.Error())
		}
	}

	logger.Success(fmt.Sprintf("@%s imported %s (%s)", message.From.UserName, result.Song.Title, id))
	return b.SendMessage(message.Chat.ID, importSummary(result))
}

func importSummary(result *lyrics.LyricsResult) string {
	song := result.Song
	var sb strings.Builder
	fmt.Fprintf(&sb, "песня добавлена: %s\n", song.Title)
	if song.Artist != "" {
		fmt.Fprintf(&sb, "автор: %s\n", song.Artist)
	}
	if song.CCLI != "" {
		fmt.Fprintf(&sb, "ccli: %s\n", song.CCLI)
	}
	fmt.Fprintf(&sb, "частей: %d", len(song.Sections))
	if len(song.Keywords) > 0 {
		fmt.Fprintf(&sb, "\nтеги: %s", strings.Join(song.Keywords, ", "))
	}
	return sb.String()
}

func SetupHandlers(adminBot *bot.Bot, cfg *config.Config, botCfg *config.BotConfig, service *lyrics.Service, store *db.Store, uploads UploadCounter) {
	handlers := NewAdminHandlers(botCfg.AdminUsernames, service, store, uploads)
	search := NewSearchHandler(botCfg.AdminUsernames, store)
	publisher := NewPublisher(cfg.PublishWebhookURL, cfg.PublishToken)

	commandHandlers := map[string]bot.Handler{
		"start":    handlers.startHandler,
		"findsong": search.findSongHandler,
		"publish":  handlers.publishHandler(publisher),
	}

	messageHandlers := []bot.Handler{
		handlers.documentHandler,
		search.messageHandler,
	}

	callbackHandlers := map[string]bot.Handler{
		showSongPrefix: search.callbackHandler,
	}

	go adminBot.Start(commandHandlers, messageHandlers, callbackHandlers)
}
