// Package lookup implements the name sources consulted for keys without an
// inline override.
package lookup

import "errors"

var (
	ErrNotFound  = errors.New("name not found")
	ErrMalformed = errors.New("malformed response")
)
