package turn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandevgo/fakebot/internal/core"
)

func TestAssemble(t *testing.T) {
	x := core.Attachment{Ref: "X"}
	y := core.Attachment{Ref: "Y"}

	tests := []struct {
		name  string
		turns []core.Turn
		names map[string]string
		want  []core.OutputRecord
	}{
		{
			name: "override wins over resolved name",
			turns: []core.Turn{
				{Key: "1", ID: 1, Override: "Bob", Content: "hi"},
			},
			names: map[string]string{"1": "Alice"},
			want: []core.OutputRecord{
				{ID: 1, Name: "Bob", Content: []core.Component{core.Text{Value: "hi"}}},
			},
		},
		{
			name: "resolved name then synthetic fallback",
			turns: []core.Turn{
				{Key: "1", ID: 1, Content: "a"},
				{Key: "2", ID: 2, Content: "b"},
			},
			names: map[string]string{"1": "Alice"},
			want: []core.OutputRecord{
				{ID: 1, Name: "Alice", Content: []core.Component{core.Text{Value: "a"}}},
				{ID: 2, Name: "User2", Content: []core.Component{core.Text{Value: "b"}}},
			},
		},
		{
			name: "text precedes attachments",
			turns: []core.Turn{
				{Key: "3", ID: 3, Content: "look", Attachments: []core.Attachment{x, y}},
			},
			want: []core.OutputRecord{
				{ID: 3, Name: "User3", Content: []core.Component{core.Text{Value: "look"}, x, y}},
			},
		},
		{
			name: "attachment only",
			turns: []core.Turn{
				{Key: "3", ID: 3, Attachments: []core.Attachment{x}},
			},
			want: []core.OutputRecord{
				{ID: 3, Name: "User3", Content: []core.Component{x}},
			},
		},
		{
			name: "empty turn dropped, order kept",
			turns: []core.Turn{
				{Key: "1", ID: 1, Content: "a"},
				{Key: "2", ID: 2},
				{Key: "3", ID: 3, Content: "c"},
			},
			want: []core.OutputRecord{
				{ID: 1, Name: "User1", Content: []core.Component{core.Text{Value: "a"}}},
				{ID: 3, Name: "User3", Content: []core.Component{core.Text{Value: "c"}}},
			},
		},
		{
			name:  "no turns",
			turns: nil,
			want:  []core.OutputRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.turns, tt.names)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
