// Package bot hosts the Telegram transport: the message sender used by the
// batch steps and the interactive long-polling bot.
package bot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLen is the chunk size for outgoing messages, kept below
// Telegram's 4096-character limit.
const maxMessageLen = 4000

// Telegram sends text messages through the Bot API, splitting long messages
// at paragraph boundaries.
type Telegram struct {
	api *tgbotapi.BotAPI
}

// NewTelegram creates a Telegram sender for the given bot token.
func NewTelegram(token string) (*Telegram, error) {
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %v", err)
	}
	return &Telegram{api: api}, nil
}

// API exposes the underlying client for the interactive bot loop.
func (t *Telegram) API() *tgbotapi.BotAPI {
	return t.api
}

// SendText sends the text to the chat, one ordered chunk at a time.
func (t *Telegram) SendText(chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %v", chatID, err)
	}
	for _, chunk := range SplitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(id, chunk)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := t.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send message to %s: %v", chatID, err)
		}
	}
	return nil
}

// SplitMessage splits text into chunks of at most limit characters,
// preferring "\n\n" paragraph boundaries. A single paragraph longer than the
// limit is split at the limit.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		for len(para) > limit {
			// Oversized paragraph, hard split on a rune boundary so an
			// umlaut never straddles two chunks.
			cut := limit
			for cut > 0 && !utf8.RuneStart(para[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, para[:cut])
			para = para[cut:]
		}
		need := len(para)
		if current.Len() > 0 {
			need += 2
		}
		if current.Len()+need > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
