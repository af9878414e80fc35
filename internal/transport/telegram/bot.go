package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/command"
	"github.com/sandevgo/fakebot/internal/service/composer"
	"github.com/sandevgo/fakebot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Composer interface {
	ComposeCommand(ctx context.Context, components []core.Component) ([]core.OutputRecord, error)
}

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	compose  core.ComposeConfig
	composer Composer
	router   core.CmdRouter
	senders  core.SendersRepository
	sender   *sender
}

// NewBot wires handlers onto an API client created by NewAPI. senders may
// be nil, in which case chat members are not recorded.
func NewBot(
	ctx context.Context,
	api *tele.Bot,
	cfg *config.TelegramConfig,
	compose core.ComposeConfig,
	composer Composer,
	router core.CmdRouter,
	senders core.SendersRepository,
) *Bot {
	bot := &Bot{
		bot:      api,
		cfg:      cfg,
		compose:  compose,
		composer: composer,
		router:   router,
		senders:  senders,
		sender:   newSender(api),
	}

	// Use context from Signal with logger
	api.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	api.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || !cfg.IsAllowed(c.Sender().ID) {
				return nil
			}
			return next(c)
		}
	})

	api.Use(bot.recordSender)

	api.Handle(tele.OnText, bot.handleMessage)
	api.Handle(tele.OnPhoto, bot.handleMessage)

	return bot
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("username", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) recordSender(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if b.senders != nil {
			if s, ok := storedSender(c.Sender()); ok {
				ctx := requestContext(c)
				if err := b.senders.Upsert(ctx, s); err != nil {
					log.FromCtx(ctx).Debug().Err(err).Int64("sender", s.ID).Msg("failed to record sender")
				}
			}
		}
		return next(c)
	}
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := requestContext(c)
	text := c.Text()

	if isTriggered(text, b.compose.GetTrigger()) {
		return b.handleCompose(ctx, c, text)
	}

	if c.Message().Photo != nil {
		return nil
	}

	if reply, ok := b.router.Execute(ctx, text); ok {
		return b.sender.sendMarkdown(ctx, c.Chat(), reply, false)
	}
	return nil
}

func (b *Bot) handleCompose(ctx context.Context, c tele.Context, text string) error {
	logger := log.FromCtx(ctx).With().Int64("chat", c.Chat().ID).Logger()
	ctx = logger.WithContext(ctx)

	_ = c.Notify(tele.Typing)

	components := messageComponents(text, c.Message().Photo, b.compose.GetTrigger(), b.compose.GetDelimiter())

	records, err := b.composer.ComposeCommand(ctx, components)
	if errors.Is(err, composer.ErrNoTurns) {
		attempted, _ := composer.Attempted(err)
		return b.sender.sendMarkdown(ctx, c.Chat(), command.Diagnostic(b.compose, attempted), false)
	}
	if err != nil {
		logger.Error().Err(err).Msg("compose failed")
		return err
	}

	return newRenderer(b.sender, c.Chat()).Render(ctx, records)
}

func requestContext(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func storedSender(u *tele.User) (core.StoredSender, bool) {
	if u == nil || u.IsBot {
		return core.StoredSender{}, false
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" && u.Username != "" {
		name = "@" + u.Username
	}
	if name == "" {
		return core.StoredSender{}, false
	}
	return core.StoredSender{ID: u.ID, Name: name}, true
}
