// Package cli prints composed records to a terminal.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/composer"
	"github.com/sandevgo/fakebot/internal/service/ui"
)

type Printer struct {
	out  io.Writer
	json bool
}

func NewPrinter(out io.Writer, asJSON bool) *Printer {
	return &Printer{out: out, json: asJSON}
}

// Render implements core.Renderer. Records are written as speech bubbles or,
// in JSON mode, as one indented array.
func (p *Printer) Render(_ context.Context, records []core.OutputRecord) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(composer.Views(records))
	}

	for _, rec := range records {
		if _, err := fmt.Fprintln(p.out, FormatRecord(rec)); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecord renders one record as a header line above a bordered body.
func FormatRecord(rec core.OutputRecord) string {
	header := ui.NameStyle.Render(rec.Name) + " " + ui.IDStyle.Render(fmt.Sprintf("(%d)", rec.ID))

	var lines []string
	for _, item := range rec.Content {
		switch c := item.(type) {
		case core.Text:
			lines = append(lines, c.Value)
		case core.Attachment:
			lines = append(lines, "📎 "+ui.AttachmentStyle.Render(c.Ref))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, ui.BubbleStyle.Render(strings.Join(lines, "\n")))
}

// Diagnostic writes the zero-turn message with the expected grammar.
func (p *Printer) Diagnostic(grammar, attempted string) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Error     string `json:"error"`
			Usage     string `json:"usage"`
			Attempted string `json:"attempted,omitempty"`
		}{composer.ErrNoTurns.Error(), grammar, attempted})
	}

	var sb strings.Builder
	sb.WriteString(ui.ErrorStyle.Render("No valid turns found.") + "\n")
	sb.WriteString(ui.UsageStyle.Render("Usage: "+grammar) + "\n")
	if attempted != "" {
		sb.WriteString(ui.DescStyle.Render("Parsed: "+attempted) + "\n")
	}
	_, err := io.WriteString(p.out, sb.String())
	return err
}
