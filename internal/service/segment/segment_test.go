package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/stretchr/testify/assert"
)

func txt(s string) core.Text          { return core.Text{Value: s} }
func att(ref string) core.Attachment { return core.Attachment{Ref: ref} }

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input []core.Component
		want  []core.Segment
	}{
		{
			name:  "no delimiter yields the input unchanged",
			input: []core.Component{txt("111 hello there")},
			want:  []core.Segment{{Text: "111 hello there"}},
		},
		{
			name:  "two turns",
			input: []core.Component{txt("111 hi | 222 bye")},
			want:  []core.Segment{{Text: "111 hi "}, {Text: " 222 bye"}},
		},
		{
			name:  "consecutive delimiters drop the blank middle",
			input: []core.Component{txt("5 a||6 b")},
			want:  []core.Segment{{Text: "5 a"}, {Text: "6 b"}},
		},
		{
			name:  "whitespace-only inner pieces are dropped",
			input: []core.Component{txt("1 a|  |\t|2 b")},
			want:  []core.Segment{{Text: "1 a"}, {Text: "2 b"}},
		},
		{
			name:  "trailing delimiter without text",
			input: []core.Component{txt("111 hi|")},
			want:  []core.Segment{{Text: "111 hi"}},
		},
		{
			name:  "leading delimiter",
			input: []core.Component{txt("|111 hi")},
			want:  []core.Segment{{Text: "111 hi"}},
		},
		{
			name:  "attachment goes to the segment opened after the delimiter",
			input: []core.Component{txt("111 hi|"), att("X"), txt("222 bye")},
			want: []core.Segment{
				{Text: "111 hi"},
				{Text: "222 bye", Attachments: []core.Attachment{att("X")}},
			},
		},
		{
			name:  "attachment before the delimiter stays with the first segment",
			input: []core.Component{txt("111 look "), att("X"), txt(" | 222 nice")},
			want: []core.Segment{
				{Text: "111 look  ", Attachments: []core.Attachment{att("X")}},
				{Text: " 222 nice"},
			},
		},
		{
			name:  "trailing delimiter kept alive by an attachment",
			input: []core.Component{txt("111 hi|"), att("X")},
			want: []core.Segment{
				{Text: "111 hi"},
				{Attachments: []core.Attachment{att("X")}},
			},
		},
		{
			name:  "attachment only",
			input: []core.Component{att("X"), att("Y")},
			want:  []core.Segment{{Attachments: []core.Attachment{att("X"), att("Y")}}},
		},
		{
			name:  "inner pieces never receive attachments",
			input: []core.Component{txt("1 a|2 b|3 c"), att("X")},
			want: []core.Segment{
				{Text: "1 a"},
				{Text: "2 b"},
				{Text: "3 c", Attachments: []core.Attachment{att("X")}},
			},
		},
		{
			name:  "text runs concatenate into the open segment",
			input: []core.Component{txt("111 he"), txt("llo"), att("X"), txt(" world|222 x")},
			want: []core.Segment{
				{Text: "111 hello world", Attachments: []core.Attachment{att("X")}},
				{Text: "222 x"},
			},
		},
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: []core.Component{txt("   \n ")},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, '|')
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplit_AtMostKPlusOneSegments(t *testing.T) {
	inputs := []string{"a|b|c", "||||", "1 x|2 y", "a||b||c|", "no delimiter"}
	for _, in := range inputs {
		k := 0
		for _, r := range in {
			if r == '|' {
				k++
			}
		}
		got := Split([]core.Component{txt(in)}, '|')
		assert.LessOrEqual(t, len(got), k+1, in)
	}
}

func TestSplit_DoesNotMutateInput(t *testing.T) {
	input := []core.Component{txt("1 a|2 b"), att("X")}
	snapshot := append([]core.Component(nil), input...)

	_ = Split(input, '|')

	assert.Equal(t, snapshot, input)
}

func TestSplit_CustomDelimiter(t *testing.T) {
	got := Split([]core.Component{txt("1 a | b ; 2 c")}, ';')
	want := []core.Segment{{Text: "1 a | b "}, {Text: " 2 c"}}
	assert.Equal(t, want, got)
}

func TestTexts(t *testing.T) {
	segs := []core.Segment{{Text: " abc "}, {Text: "def"}}
	assert.Equal(t, "abc | def", Texts(segs, '|'))
}
