package core

const (
	FakeName          = "FakeBot"
	FakeUserAgent     = "FakeBot/0.1"
	FakeRepositoryURL = "https://github.com/sandevgo/fakebot"
	FakeVersion       = "0.1.0"
)

// Component is one element of a raw command: either a run of text or an
// attachment reference. The set is closed.
type Component interface{ isComponent() }

// Text is a run of plain text.
type Text struct {
	Value string `json:"text"`
}

func (Text) isComponent() {}

// Attachment references binary content owned by the host (a URL or a
// Telegram file id). It is never dereferenced by the pipeline.
type Attachment struct {
	Ref string `json:"ref"`
}

func (Attachment) isComponent() {}

// Segment is the text and attachments between two delimiters.
type Segment struct {
	Text        string
	Attachments []Attachment
}

// Turn is a segment that matched the turn grammar.
type Turn struct {
	Key         string
	ID          int64
	Override    string // empty means no override
	Content     string
	Attachments []Attachment
}

func (t Turn) HasOverride() bool {
	return t.Override != ""
}

// OutputRecord is one impersonated message ready for rendering.
// Content holds Text and Attachment components in display order.
type OutputRecord struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Content []Component `json:"content"`
}
