package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type memoryEntry struct {
	sel       models.Selection
	expiresAt time.Time
}

// SelectionMemoryRepository is the in-process selection store used when Redis is not configured.
type SelectionMemoryRepository struct {
	mu      sync.Mutex
	exp     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewSelectionMemoryRepository creates an empty store. A zero expiration keeps entries forever.
func NewSelectionMemoryRepository(expiration time.Duration) *SelectionMemoryRepository {
	return &SelectionMemoryRepository{
		exp:     expiration,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *SelectionMemoryRepository) Save(_ context.Context, sessionID string, sel models.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expiresAt time.Time
	if r.exp > 0 {
		expiresAt = r.now().Add(r.exp)
	}
	r.entries[sessionID] = memoryEntry{sel: sel, expiresAt: expiresAt}
	return nil
}

func (r *SelectionMemoryRepository) Get(_ context.Context, sessionID string) (*models.Selection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.entries, sessionID)
		return nil, nil
	}
	sel := e.sel
	return &sel, nil
}

func (r *SelectionMemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}
