// Package segment splits a raw command into per-speaker segments.
package segment

import (
	"fmt"
	"strings"

	"github.com/sandevgo/fakebot/internal/core"
)

// Split partitions components into segments on delimiter. Text before a
// delimiter stays with the open segment; attachments join whichever segment
// is open when they are encountered. Segments with blank text and no
// attachments are dropped.
func Split(components []core.Component, delimiter rune) []core.Segment {
	var (
		out  []core.Segment
		open core.Segment
		sep  = string(delimiter)
	)

	for _, comp := range components {
		switch c := comp.(type) {
		case core.Text:
			parts := strings.Split(c.Value, sep)
			open.Text += parts[0]
			if len(parts) == 1 {
				continue
			}

			out = appendIfFilled(out, open)
			for _, inner := range parts[1 : len(parts)-1] {
				out = appendIfFilled(out, core.Segment{Text: inner})
			}
			open = core.Segment{Text: parts[len(parts)-1]}
		case core.Attachment:
			open.Attachments = append(open.Attachments, c)
		default:
			panic(fmt.Sprintf("segment: unknown component %T", comp))
		}
	}

	return appendIfFilled(out, open)
}

func appendIfFilled(out []core.Segment, seg core.Segment) []core.Segment {
	if strings.TrimSpace(seg.Text) == "" && len(seg.Attachments) == 0 {
		return out
	}
	return append(out, seg)
}

// Texts joins the text of every segment, used to echo what was attempted
// when nothing could be parsed.
func Texts(segments []core.Segment, delimiter rune) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = strings.TrimSpace(s.Text)
	}
	return strings.Join(parts, " "+string(delimiter)+" ")
}
