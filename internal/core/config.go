package core

import "time"

type ComposeConfig interface {
	GetTrigger() string
	GetDelimiter() rune
}

type ResolveConfig interface {
	GetLookupTimeout() time.Duration
	GetResolveBudget() time.Duration
}

type IdentityCache interface {
	Get(key string) (string, bool)
	Put(key, name string) bool
	Len() int
}
