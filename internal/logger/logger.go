package logger

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sukalov/sbsong/internal/utils/e"
)

var (
	ChannelID int64
	once      sync.Once
	botClient BotClient

	mu           sync.RWMutex
	output       io.Writer = color.Error
	debugEnabled bool
)

type BotClient interface {
	SendMessage(chatID int64, text string) error
}

type level struct {
	prefix string
	paint  *color.Color
}

var (
	levelInfo    = level{"ℹ️ INFO", color.New(color.FgCyan)}
	levelError   = level{"❌ ERROR", color.New(color.FgRed, color.Bold)}
	levelDebug   = level{"🔍 DEBUG", color.New(color.FgHiBlack)}
	levelSuccess = level{"✅ SUCCESS", color.New(color.FgGreen)}
)

// Init routes logs to a Telegram channel as well as the terminal.
// Only the first call has any effect.
func Init(client BotClient, channelID int64) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		ChannelID = channelID
		botClient = client
	})
}

// SetOutput replaces the terminal sink. A nil writer silences it.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

func Info(message string) {
	sendLog(levelInfo, message)
}

func Error(message string) {
	sendLog(levelError, message)
}

func Debug(message string) {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if !enabled {
		return
	}
	sendLog(levelDebug, message)
}

func Success(message string) {
	sendLog(levelSuccess, message)
}

func sendLog(lvl level, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	mu.RLock()
	w, client, chatID := output, botClient, ChannelID
	mu.RUnlock()

	if w != nil {
		fmt.Fprintf(w, "[%s] %s %s\n", timestamp, lvl.paint.Sprint(lvl.prefix), message)
	}

	if client == nil {
		return
	}

	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, lvl.prefix, message)
	go func() {
		if err := client.SendMessage(chatID, logMessage); err != nil {
			fmt.Fprintf(color.Error, "Failed to send log to channel: %v\nLog was: %s\n", err, logMessage)
		}
	}()
}

// LogWithErr logs message at info level, or at error level with err
// attached, and returns err wrapped with message.
func LogWithErr(message string, err error) error {
	if err == nil {
		Info(message)
		return nil
	}

	Error(fmt.Sprintf("%s\nError: %v", message, err))

	return e.Wrap(message, err)
}
