package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/fakebot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSenders map[int64]string

func (m memSenders) Upsert(_ context.Context, s core.StoredSender) error {
	m[s.ID] = s.Name
	return nil
}

func (m memSenders) Name(_ context.Context, id int64) (string, error) {
	if id < 0 {
		return "", errors.New("db closed")
	}
	name, ok := m[id]
	if !ok {
		return "", core.ErrSenderNotFound
	}
	return name, nil
}

func TestDirectory_Lookup(t *testing.T) {
	d := NewDirectory(memSenders{111: "Alice"})

	name, err := d.Lookup(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = d.Lookup(context.Background(), "222")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = d.Lookup(context.Background(), "99999999999999999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectory_StorageError(t *testing.T) {
	d := NewDirectory(memSenders{})

	_, err := d.Lookup(context.Background(), "-1")
	assert.EqualError(t, err, "db closed")
}
