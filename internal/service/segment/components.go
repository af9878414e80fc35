package segment

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/sandevgo/fakebot/internal/core"
)

var (
	urlPattern      = regexp.MustCompile(`https?://[^\s<>"]+`)
	imageExtensions = map[string]struct{}{
		".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {},
	}
)

// FromText turns plain text into components. Bare image URLs become
// attachments at the position they appear in; everything else stays text.
// A URL never extends past the delimiter.
func FromText(text string, delimiter rune) []core.Component {
	var out []core.Component
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		if i := strings.IndexRune(raw, delimiter); i >= 0 {
			raw = raw[:i]
			loc[1] = loc[0] + i
		}
		if !IsImageURL(raw) {
			continue
		}
		if loc[0] > last {
			out = append(out, core.Text{Value: text[last:loc[0]]})
		}
		out = append(out, core.Attachment{Ref: raw})
		last = loc[1]
	}
	if last < len(text) || len(out) == 0 {
		out = append(out, core.Text{Value: text[last:]})
	}
	return out
}

// IsImageURL reports whether raw is an absolute http(s) URL whose path ends
// with a known image extension.
func IsImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	_, ok := imageExtensions[strings.ToLower(path.Ext(u.Path))]
	return ok
}
