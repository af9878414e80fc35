// Package turn parses segments into speaker turns and assembles the final
// output records.
package turn

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sandevgo/fakebot/internal/core"
)

var grammar = regexp.MustCompile(`(?s)^\s*(\d+)(?:\s*\(([^)]*)\))?\s*(.*)$`)

// Parse matches a segment against the turn grammar:
//
//	<digits>[(<override>)] <content>
//
// The whitespace before content is optional. It returns false when the
// segment does not match or when the key does not fit into an int64.
func Parse(seg core.Segment) (core.Turn, bool) {
	m := grammar.FindStringSubmatch(strings.TrimSpace(seg.Text))
	if m == nil {
		return core.Turn{}, false
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return core.Turn{}, false
	}

	return core.Turn{
		Key:         m[1],
		ID:          id,
		Override:    strings.TrimSpace(m[2]),
		Content:     strings.TrimSpace(m[3]),
		Attachments: seg.Attachments,
	}, true
}

// ParseAll parses every segment and drops the ones that do not match.
func ParseAll(segments []core.Segment) []core.Turn {
	turns := make([]core.Turn, 0, len(segments))
	for _, seg := range segments {
		if t, ok := Parse(seg); ok {
			turns = append(turns, t)
		}
	}
	return turns
}
