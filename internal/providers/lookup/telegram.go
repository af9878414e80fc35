package lookup

import (
	"context"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

type ChatFetcher interface {
	ChatByID(id int64) (*tele.Chat, error)
}

// Telegram asks the Bot API for the public profile of a user id. It only
// knows users that have interacted with the bot or share a chat with it.
type Telegram struct {
	api ChatFetcher
}

func NewTelegram(api ChatFetcher) *Telegram {
	return &Telegram{api: api}
}

func (t *Telegram) Name() string {
	return "telegram"
}

func (t *Telegram) Lookup(ctx context.Context, key string) (string, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return "", ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	chat, err := t.api.ChatByID(id)
	if err != nil {
		return "", err
	}
	return ChatName(chat), nil
}

// ChatName is "First Last" when either is set, otherwise "@username".
func ChatName(chat *tele.Chat) string {
	if chat == nil {
		return ""
	}
	if full := strings.TrimSpace(chat.FirstName + " " + chat.LastName); full != "" {
		return full
	}
	if chat.Username != "" {
		return "@" + chat.Username
	}
	return strings.TrimSpace(chat.Title)
}
