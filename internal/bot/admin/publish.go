package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sukalov/sbsong/internal/bot"
	"github.com/sukalov/sbsong/internal/logger"
)

var errPublishNotConfigured = errors.New("publish webhook url or token not set")

// Publisher triggers a rebuild of the public songbook through a
// repository_dispatch style webhook.
type Publisher struct {
	url    string
	token  string
	client *http.Client
}

func NewPublisher(url, token string) *Publisher {
	return &Publisher{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Publisher) Publish(ctx context.Context, reason string) error {
	if p.url == "" || p.token == "" {
		return errPublishNotConfigured
	}

	payload := map[string]interface{}{
		"event_type": "songbook-updated",
		"client_payload": map[string]string{
			"unit": reason,
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", fmt.Sprintf("token %s", p.token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("publish request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if len(body) > 0 {
		logger.Debug(fmt.Sprintf("publish webhook response: %s", body))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("publish webhook returned status %d: %s", resp.StatusCode, body)
	}
	return nil
}

func (h *AdminHandlers) publishHandler(publisher *Publisher) bot.Handler {
	return func(b *bot.Bot, update tgbotapi.Update) error {
		message := update.Message
		if !isAdmin(h.admins, message.From) {
			return b.SendMessage(message.Chat.ID, "вы не админ")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := publisher.Publish(ctx, "publish triggered via telegram by @"+message.From.UserName)
		if errors.Is(err, errPublishNotConfigured) {
			return b.SendMessage(message.Chat.ID, "ошибка: не настроены webhook url или токен")
		}
		if err != nil {
			logger.Error(err.Error())
			return b.SendMessage(message.Chat.ID, fmt.Sprintf("ошибка: %v", err))
		}

		return b.SendMessage(message.Chat.ID, "запущен процесс пересборки сонгбука")
	}
}
