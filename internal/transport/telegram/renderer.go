package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/pkg/conv"
	tele "gopkg.in/telebot.v3"
)

// Renderer posts each record to a chat as its own message.
type Renderer struct {
	sender *sender
	to     tele.Recipient
}

func newRenderer(s *sender, to tele.Recipient) *Renderer {
	return &Renderer{sender: s, to: to}
}

func (r *Renderer) Render(ctx context.Context, records []core.OutputRecord) error {
	for _, rec := range records {
		d := planDelivery(rec)

		if d.text != "" {
			if err := r.sender.sendHTML(ctx, r.to, d.text, false); err != nil {
				return err
			}
		}
		for i, refs := range d.albums {
			caption := ""
			if i == 0 {
				caption = d.caption
			}
			if err := r.sender.sendPhotos(ctx, r.to, refs, caption); err != nil {
				return err
			}
		}
	}
	return nil
}

// delivery is how one record maps onto Telegram messages.
type delivery struct {
	text    string
	caption string
	albums  [][]string
}

func planDelivery(rec core.OutputRecord) delivery {
	var (
		texts []string
		refs  []string
	)
	for _, item := range rec.Content {
		switch c := item.(type) {
		case core.Text:
			texts = append(texts, c.Value)
		case core.Attachment:
			refs = append(refs, c.Ref)
		}
	}

	html := recordHTML(rec.Name, strings.Join(texts, "\n"))
	if len(refs) == 0 {
		return delivery{text: html}
	}

	d := delivery{albums: chunk(refs, maxAlbumSize)}
	if utf8.RuneCountInString(html) <= maxCaptionLen {
		d.caption = html
	} else {
		d.text = html
	}
	return d
}

// recordHTML renders the bold display name followed by the message text.
// Both are taken literally.
func recordHTML(name, text string) string {
	md := "**" + conv.EscapeMarkdown(name) + "**"
	if text != "" {
		md += "\n" + conv.EscapeMarkdown(text)
	}
	return strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
}

func chunk(refs []string, size int) [][]string {
	var out [][]string
	for len(refs) > size {
		out = append(out, refs[:size])
		refs = refs[size:]
	}
	if len(refs) > 0 {
		out = append(out, refs)
	}
	return out
}
