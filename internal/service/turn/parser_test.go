package turn

import (
	"testing"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   core.Turn
		wantOK bool
	}{
		{
			name:   "override and content",
			input:  "12345(Alice) hello",
			want:   core.Turn{Key: "12345", ID: 12345, Override: "Alice", Content: "hello"},
			wantOK: true,
		},
		{
			name:   "no override",
			input:  "999 no override text",
			want:   core.Turn{Key: "999", ID: 999, Content: "no override text"},
			wantOK: true,
		},
		{
			name:   "not digits",
			input:  "abc hello",
			wantOK: false,
		},
		{
			name:   "content glued to the key",
			input:  "12345hello",
			want:   core.Turn{Key: "12345", ID: 12345, Content: "hello"},
			wantOK: true,
		},
		{
			name:   "surrounding whitespace and space before override",
			input:  "  42 (Bob)   hi there  ",
			want:   core.Turn{Key: "42", ID: 42, Override: "Bob", Content: "hi there"},
			wantOK: true,
		},
		{
			name:   "multiline content",
			input:  "7 line one\nline two",
			want:   core.Turn{Key: "7", ID: 7, Content: "line one\nline two"},
			wantOK: true,
		},
		{
			name:   "blank override is absent",
			input:  "7(  ) hi",
			want:   core.Turn{Key: "7", ID: 7, Content: "hi"},
			wantOK: true,
		},
		{
			name:   "override trimmed",
			input:  "7( Big Al ) hi",
			want:   core.Turn{Key: "7", ID: 7, Override: "Big Al", Content: "hi"},
			wantOK: true,
		},
		{
			name:   "nested parentheses are not special",
			input:  "7(a(b)) hi",
			want:   core.Turn{Key: "7", ID: 7, Override: "a(b", Content: ") hi"},
			wantOK: true,
		},
		{
			name:   "unclosed parenthesis is content",
			input:  "7(abc hi",
			want:   core.Turn{Key: "7", ID: 7, Content: "(abc hi"},
			wantOK: true,
		},
		{
			name:   "key only",
			input:  "7",
			want:   core.Turn{Key: "7", ID: 7},
			wantOK: true,
		},
		{
			name:   "key overflows int64",
			input:  "99999999999999999999 hi",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(core.Segment{Text: tt.input})
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_CarriesAttachments(t *testing.T) {
	atts := []core.Attachment{{Ref: "X"}, {Ref: "Y"}}
	got, ok := Parse(core.Segment{Text: "5", Attachments: atts})
	require.True(t, ok)
	assert.Equal(t, atts, got.Attachments)
}

func TestParseAll_DropsMalformed(t *testing.T) {
	segs := []core.Segment{{Text: "1 a"}, {Text: "nope"}, {Text: "2 b"}}
	got := ParseAll(segs)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Key)
	assert.Equal(t, "2", got[1].Key)
}
