package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sandevgo/fakebot/internal/core"
)

// StripTrigger removes the shortest leading part of the first text
// component that ends with trigger (matched case-insensitively), together
// with the whitespace that follows it. Components are returned unchanged
// when the first component is not text or does not contain the trigger.
func StripTrigger(components []core.Component, trigger string) []core.Component {
	if len(components) == 0 || trigger == "" {
		return components
	}
	first, ok := components[0].(core.Text)
	if !ok {
		return components
	}

	end := indexFoldEnd(first.Value, trigger)
	if end < 0 {
		return components
	}

	out := make([]core.Component, len(components))
	copy(out, components)
	out[0] = core.Text{Value: strings.TrimLeftFunc(first.Value[end:], unicode.IsSpace)}
	return out
}

// HasTrigger reports whether text, ignoring leading whitespace, starts with
// trigger case-insensitively.
func HasTrigger(text, trigger string) bool {
	_, ok := CutTrigger(text, trigger)
	return ok
}

// CutTrigger returns the text following a leading trigger. Leading
// whitespace before the trigger is ignored.
func CutTrigger(text, trigger string) (string, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if trigger == "" {
		return text, false
	}
	n := prefixFoldLen(text, trigger)
	if n == 0 {
		return text, false
	}
	return text[n:], true
}

// indexFoldEnd returns the byte offset just past the first case-insensitive
// occurrence of substr in s, or -1.
func indexFoldEnd(s, substr string) int {
	for i := 0; i < len(s); {
		if n := prefixFoldLen(s[i:], substr); n > 0 {
			return i + n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1
}

// prefixFoldLen returns how many bytes of s match substr under simple case
// folding, or 0 when s does not start with substr.
func prefixFoldLen(s, substr string) int {
	i := 0
	for _, want := range substr {
		if i >= len(s) {
			return 0
		}
		got, size := utf8.DecodeRuneInString(s[i:])
		if !equalFoldRune(got, want) {
			return 0
		}
		i += size
	}
	return i
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
