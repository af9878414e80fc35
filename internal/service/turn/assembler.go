package turn

import (
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/identity"
)

// Assemble builds output records in turn order. The display name is the
// override, else names[key], else the synthetic name for the key. Turns
// without text and attachments produce no record.
func Assemble(turns []core.Turn, names map[string]string) []core.OutputRecord {
	records := make([]core.OutputRecord, 0, len(turns))
	for _, t := range turns {
		content := make([]core.Component, 0, len(t.Attachments)+1)
		if t.Content != "" {
			content = append(content, core.Text{Value: t.Content})
		}
		for _, a := range t.Attachments {
			content = append(content, a)
		}
		if len(content) == 0 {
			continue
		}

		records = append(records, core.OutputRecord{
			ID:      t.ID,
			Name:    displayName(t, names),
			Content: content,
		})
	}
	return records
}

func displayName(t core.Turn, names map[string]string) string {
	if t.HasOverride() {
		return t.Override
	}
	if name, ok := names[t.Key]; ok && name != "" {
		return name
	}
	return identity.Synthetic(t.Key)
}
