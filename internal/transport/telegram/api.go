package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/pkg/log"
	"github.com/sandevgo/fakebot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

// NewAPI connects to the Bot API, retrying transient failures. A rejected
// token fails immediately.
func NewAPI(ctx context.Context, cfg *config.TelegramConfig) (*tele.Bot, error) {
	logger := log.FromCtx(ctx)

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			ev := logger.Error().Err(err)
			if c != nil && c.Chat() != nil {
				ev = ev.Int64("chat", c.Chat().ID)
			}
			ev.Msg("telegram handler failed")
		},
	}

	b, err := retry.DoValue(ctx, retry.NewDefaultRetrier(), func() (*tele.Bot, error) {
		b, err := tele.NewBot(pref)
		if errors.Is(err, tele.ErrUnauthorized) {
			return nil, retry.Permanent(err)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("telegram not reachable, retrying")
		}
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return b, nil
}
