package composer

import (
	"errors"
	"fmt"
)

var ErrNoTurns = errors.New("no valid turns")

// NoTurnsError carries the text that produced no records so the caller can
// echo it back next to the expected grammar.
type NoTurnsError struct {
	Attempted string
}

func (e *NoTurnsError) Error() string {
	if e.Attempted == "" {
		return ErrNoTurns.Error()
	}
	return fmt.Sprintf("%s in %q", ErrNoTurns, e.Attempted)
}

func (e *NoTurnsError) Unwrap() error {
	return ErrNoTurns
}

// Attempted returns the echoed text of a NoTurnsError anywhere in err's
// chain.
func Attempted(err error) (string, bool) {
	var nt *NoTurnsError
	if errors.As(err, &nt) {
		return nt.Attempted, true
	}
	return "", false
}
