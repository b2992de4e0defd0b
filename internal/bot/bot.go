package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/sbsong/internal/logger"
)

// Handler reacts to a single update.
type Handler func(b *Bot, update tgbotapi.Update) error

// Bot represents a configurable Telegram bot
type Bot struct {
	Client     *tgbotapi.BotAPI
	fetcher    *Fetcher
	updateChan tgbotapi.UpdatesChannel
	stopChan   chan struct{}
	name       string
	mu         sync.Mutex
}

// New creates a new bot instance
func New(name, token string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updateChan := botClient.GetUpdatesChan(updateConfig)

	return &Bot{
		Client:     botClient,
		fetcher:    NewFetcher(),
		updateChan: updateChan,
		stopChan:   make(chan struct{}),
		name:       name,
	}, nil
}

// Start begins processing updates with custom handlers. Callback data of
// the form "prefix:payload" is routed by prefix when no exact match exists.
func (b *Bot) Start(
	commandHandlers map[string]Handler,
	messageHandlers []Handler,
	callbackHandlers map[string]Handler,
) {
	logger.Info(fmt.Sprintf("[%s] authorized on account %s", b.name, b.Client.Self.UserName))

	for {
		select {
		case update := <-b.updateChan:
			go b.processUpdate(update, commandHandlers, messageHandlers, callbackHandlers)
		case <-b.stopChan:
			return
		}
	}
}

func (b *Bot) processUpdate(
	update tgbotapi.Update,
	commandHandlers map[string]Handler,
	messageHandlers []Handler,
	callbackHandlers map[string]Handler,
) {
	if update.Message != nil && update.Message.IsCommand() {
		if handler, exists := commandHandlers[update.Message.Command()]; exists {
			if err := handler(b, update); err != nil {
				logger.Error(fmt.Sprintf("[%s] command handler error: %v", b.name, err))
			}
			return
		}
	}

	if update.CallbackQuery != nil {
		if handler, exists := callbackHandler(callbackHandlers, update.CallbackQuery.Data); exists {
			if err := handler(b, update); err != nil {
				logger.Error(fmt.Sprintf("[%s] callback handler error: %v", b.name, err))
			}
		}
		b.answerCallback(update.CallbackQuery.ID)
		return
	}

	if update.Message == nil {
		return
	}

	for _, handler := range messageHandlers {
		if err := handler(b, update); err != nil {
			logger.Error(fmt.Sprintf("[%s] message handler error: %v", b.name, err))
		}
	}
}

func callbackHandler(handlers map[string]Handler, data string) (Handler, bool) {
	if handler, exists := handlers[data]; exists {
		return handler, true
	}
	prefix, _, found := strings.Cut(data, ":")
	if !found {
		return nil, false
	}
	handler, exists := handlers[prefix]
	return handler, exists
}

func (b *Bot) answerCallback(id string) {
	if _, err := b.Client.Request(tgbotapi.NewCallback(id, "")); err != nil {
		logger.Debug(fmt.Sprintf("[%s] failed to answer callback: %v", b.name, err))
	}
}

// Stop halts the bot
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopChan <- struct{}{}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Client.Send(msg)
	return err
}

func (b *Bot) SendMessageWithMarkdown(chatID int64, text string, disableLinks bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.DisableWebPagePreview = disableLinks
	_, err := b.Client.Send(msg)
	return err
}

func (b *Bot) SendMessageWithButtons(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.Client.Send(msg)
	return err
}

// DownloadFile fetches the contents of an uploaded Telegram file.
func (b *Bot) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.Client.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}
	return b.fetcher.Fetch(ctx, url)
}
