package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/fakebot/internal/core"
)

// SendersRepo remembers the display names of chat members the bot has seen.
type SendersRepo struct {
	db *sql.DB
}

func NewSendersRepo(db *sql.DB) *SendersRepo {
	return &SendersRepo{db: db}
}

func (r *SendersRepo) Upsert(ctx context.Context, sender core.StoredSender) error {
	name := strings.TrimSpace(sender.Name)
	if name == "" {
		return fmt.Errorf("sender %d has no name", sender.ID)
	}

	query := `INSERT INTO senders (id, name, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at
		WHERE senders.name != excluded.name`

	if _, err := r.db.ExecContext(ctx, query, sender.ID, name); err != nil {
		return fmt.Errorf("failed to upsert sender: %w", err)
	}
	return nil
}

func (r *SendersRepo) Name(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM senders WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", core.ErrSenderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query sender: %w", err)
	}
	return name, nil
}

// Count returns how many senders the directory knows.
func (r *SendersRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM senders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count senders: %w", err)
	}
	return n, nil
}
