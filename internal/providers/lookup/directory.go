package lookup

import (
	"context"
	"errors"
	"strconv"

	"github.com/sandevgo/fakebot/internal/core"
)

// Directory serves names of senders the bot has already seen in chat.
type Directory struct {
	repo core.SendersRepository
}

func NewDirectory(repo core.SendersRepository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) Name() string {
	return "directory"
}

func (d *Directory) Lookup(ctx context.Context, key string) (string, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return "", ErrNotFound
	}

	name, err := d.repo.Name(ctx, id)
	if errors.Is(err, core.ErrSenderNotFound) {
		return "", ErrNotFound
	}
	return name, err
}
