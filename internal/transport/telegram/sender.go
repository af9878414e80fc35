package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/fakebot/pkg/conv"
	"github.com/sandevgo/fakebot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const (
	maxTelegramMsgLen = 4000 // Safety margin below 4096
	maxCaptionLen     = 1024
	maxAlbumSize      = 10
)

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string, silent bool) error {
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	return s.sendHTML(ctx, to, html, silent)
}

func (s *sender) sendHTML(ctx context.Context, to tele.Recipient, html string, silent bool) error {
	logger := log.FromCtx(ctx)

	chunks := splitHTML(html, maxTelegramMsgLen)
	for i, chunk := range chunks {
		opts := []interface{}{tele.ModeHTML}
		if silent && i == 0 {
			opts = append(opts, tele.Silent)
		}

		if _, err := s.bot.Send(to, chunk, opts...); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// sendPhotos sends refs as one photo or an album. caption goes on the first
// item.
func (s *sender) sendPhotos(ctx context.Context, to tele.Recipient, refs []string, caption string) error {
	logger := log.FromCtx(ctx)

	if len(refs) == 1 {
		photo := &tele.Photo{File: fileFor(refs[0]), Caption: caption}
		if _, err := s.bot.Send(to, photo, tele.ModeHTML); err != nil {
			logger.Error().Err(err).Msg("failed to send telegram photo")
			return err
		}
		return nil
	}

	album := make(tele.Album, len(refs))
	for i, ref := range refs {
		photo := &tele.Photo{File: fileFor(ref)}
		if i == 0 {
			photo.Caption = caption
		}
		album[i] = photo
	}
	if _, err := s.bot.SendAlbum(to, album, tele.ModeHTML); err != nil {
		logger.Error().Err(err).Int("size", len(refs)).Msg("failed to send telegram album")
		return err
	}
	return nil
}

// fileFor treats http(s) refs as URLs and anything else as a Telegram file id.
func fileFor(ref string) tele.File {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return tele.FromURL(ref)
	}
	return tele.File{FileID: ref}
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
