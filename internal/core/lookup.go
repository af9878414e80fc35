package core

import "context"

// NameSource resolves a lookup key to a display name.
// Any error, including an empty name, counts as a miss.
type NameSource interface {
	Name() string
	Lookup(ctx context.Context, key string) (string, error)
}

// Renderer presents composed records to the user.
type Renderer interface {
	Render(ctx context.Context, records []OutputRecord) error
}
