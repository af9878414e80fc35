package core

import (
	"context"
	"errors"
	"time"
)

type SendersRepository interface {
	Upsert(ctx context.Context, sender StoredSender) error
	Name(ctx context.Context, id int64) (string, error)
}

type StoredSender struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrSenderNotFound = errors.New("sender not found")
