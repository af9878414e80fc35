package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type fakeChats map[int64]*tele.Chat

func (f fakeChats) ChatByID(id int64) (*tele.Chat, error) {
	chat, ok := f[id]
	if !ok {
		return nil, errors.New("telegram: chat not found (400)")
	}
	return chat, nil
}

func TestChatName(t *testing.T) {
	tests := []struct {
		name string
		chat *tele.Chat
		want string
	}{
		{"full name", &tele.Chat{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, "Ada Lovelace"},
		{"first only", &tele.Chat{FirstName: "Ada"}, "Ada"},
		{"username", &tele.Chat{Username: "ada"}, "@ada"},
		{"group title", &tele.Chat{Title: "Team"}, "Team"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChatName(tt.chat))
		})
	}
}

func TestTelegram_Lookup(t *testing.T) {
	src := NewTelegram(fakeChats{42: {FirstName: "Grace"}})

	name, err := src.Lookup(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Grace", name)

	_, err = src.Lookup(context.Background(), "43")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Lookup(ctx, "42")
	assert.ErrorIs(t, err, context.Canceled)
}
