package telegram

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/segment"
	tele "gopkg.in/telebot.v3"
)

var mentionRx = regexp.MustCompile(`^@\w+`)

// isTriggered reports whether text starts with the trigger as a whole word.
// "/fake@botname" counts.
func isTriggered(text, trigger string) bool {
	rest, ok := segment.CutTrigger(text, trigger)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r) || r == '@'
}

// messageComponents converts a message text or caption into components.
// The "@botname" after the trigger is dropped and a photo becomes a
// trailing attachment.
func messageComponents(text string, photo *tele.Photo, trigger string, delimiter rune) []core.Component {
	comps := segment.FromText(dropMention(text, trigger), delimiter)
	if photo != nil && photo.FileID != "" {
		comps = append(comps, core.Attachment{Ref: photo.FileID})
	}
	return comps
}

func dropMention(text, trigger string) string {
	rest, ok := segment.CutTrigger(text, trigger)
	if !ok || !mentionRx.MatchString(rest) {
		return text
	}
	return trigger + " " + strings.TrimLeftFunc(mentionRx.ReplaceAllString(rest, ""), unicode.IsSpace)
}
