package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/composer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []core.OutputRecord{
	{ID: 111, Name: "Bob", Content: []core.Component{core.Text{Value: "hello"}}},
	{ID: 222, Name: "User222", Content: []core.Component{core.Attachment{Ref: "https://x.org/a.png"}}},
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Render(context.Background(), records))

	var got []composer.RecordView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, composer.Views(records), got)
}

func TestPrinter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Render(context.Background(), records))

	out := buf.String()
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "(111)")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "https://x.org/a.png")
}

func TestPrinter_Diagnostic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Diagnostic("<id> <text>", "oops"))
	assert.Contains(t, buf.String(), "Usage: <id> <text>")
	assert.Contains(t, buf.String(), "Parsed: oops")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, true).Diagnostic("<id> <text>", ""))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "no valid turns", got["error"])
	_, ok := got["attempted"]
	assert.False(t, ok)
}
