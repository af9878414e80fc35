package composer

import "github.com/sandevgo/fakebot/internal/core"

type ContentView struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

type RecordView struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Content []ContentView `json:"content"`
}

// Views flattens records into a tagged form for JSON output.
func Views(records []core.OutputRecord) []RecordView {
	out := make([]RecordView, len(records))
	for i, rec := range records {
		v := RecordView{ID: rec.ID, Name: rec.Name, Content: make([]ContentView, 0, len(rec.Content))}
		for _, item := range rec.Content {
			switch c := item.(type) {
			case core.Text:
				v.Content = append(v.Content, ContentView{Type: "text", Text: c.Value})
			case core.Attachment:
				v.Content = append(v.Content, ContentView{Type: "attachment", Ref: c.Ref})
			}
		}
		out[i] = v
	}
	return out
}
