package srv

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type namedService struct {
	name string
	rec  *recorder
}

func (s *namedService) Start(ctx context.Context) error { return nil }

func (s *namedService) Shutdown(ctx context.Context) error {
	s.rec.add(s.name)
	return nil
}

func TestShutdownServices_ReverseOrder(t *testing.T) {
	rec := &recorder{}
	services := []Service{
		&namedService{name: "db", rec: rec},
		&namedService{name: "watcher", rec: rec},
		&namedService{name: "bot", rec: rec},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ShutdownServices(ctx, services)

	assert.Equal(t, []string{"bot", "watcher", "db"}, rec.order)
}

func TestCleanup_CallsFunction(t *testing.T) {
	called := false
	svc := NewCleanup(func() error {
		called = true
		return nil
	})

	assert.NoError(t, svc.Start(context.Background()))
	assert.False(t, called)
	assert.NoError(t, svc.Shutdown(context.Background()))
	assert.True(t, called)
}
