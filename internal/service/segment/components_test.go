package segment

import (
	"testing"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []core.Component
	}{
		{
			name:  "plain text",
			input: "111 hello",
			want:  []core.Component{txt("111 hello")},
		},
		{
			name:  "empty text",
			input: "",
			want:  []core.Component{txt("")},
		},
		{
			name:  "image url in the middle",
			input: "111 look https://example.com/cat.png | 222 nice",
			want: []core.Component{
				txt("111 look "),
				att("https://example.com/cat.png"),
				txt(" | 222 nice"),
			},
		},
		{
			name:  "image url glued to the delimiter",
			input: "111 https://example.com/a.JPG|222 b",
			want: []core.Component{
				txt("111 "),
				att("https://example.com/a.JPG"),
				txt("|222 b"),
			},
		},
		{
			name:  "non-image url stays text",
			input: "111 read https://example.com/post",
			want:  []core.Component{txt("111 read https://example.com/post")},
		},
		{
			name:  "image url at the end",
			input: "111 https://example.com/a.webp?size=large",
			want: []core.Component{
				txt("111 "),
				att("https://example.com/a.webp?size=large"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromText(tt.input, '|'))
		})
	}
}

func TestFromText_FeedsSplit(t *testing.T) {
	segs := Split(FromText("111 hi|https://example.com/x.gif 222 bye", '|'), '|')
	want := []core.Segment{
		{Text: "111 hi"},
		{Text: " 222 bye", Attachments: []core.Attachment{att("https://example.com/x.gif")}},
	}
	assert.Equal(t, want, segs)
}

func TestIsImageURL(t *testing.T) {
	assert.True(t, IsImageURL("http://x.org/a.jpeg"))
	assert.False(t, IsImageURL("ftp://x.org/a.png"))
	assert.False(t, IsImageURL("/local/a.png"))
	assert.False(t, IsImageURL("https://x.org/a.png,"))
}
