package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultSessionTTL is how long an untouched session is kept.
const DefaultSessionTTL = 30 * time.Minute

// SelectionRepository persists the selection of each session.
//
//go:generate mockgen -source sessions.go -destination mock_sessions.go -package services
type SelectionRepository interface {
	Save(ctx context.Context, sessionID string, sel models.Selection) error // Stores the selection
	Get(ctx context.Context, sessionID string) (*models.Selection, error)   // Returns nil if the session is unknown
	Delete(ctx context.Context, sessionID string) error                     // Forgets the session
}

// CurrencyCatalog resolves currency codes picked by the user.
type CurrencyCatalog interface {
	Lookup(code string) (models.Currency, error)
}

type session struct {
	conv     *Conversion
	lastSeen time.Time
}

// SessionService owns the conversion views of all browser sessions.
type SessionService struct {
	fetcher RateFetcher
	catalog CurrencyCatalog
	repo    SelectionRepository
	timeout time.Duration
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	fetcher RateFetcher,
	catalog CurrencyCatalog,
	repo SelectionRepository,
	fetchTimeout time.Duration,
	ttl time.Duration,
) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		fetcher:  fetcher,
		catalog:  catalog,
		repo:     repo,
		timeout:  fetchTimeout,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Create starts a new conversion view and returns its id.
func (s *SessionService) Create(ctx context.Context) (models.SessionResponse, error) {
	id := uuid.NewString()
	conv := NewConversion(s.fetcher, s.timeout)

	if err := s.repo.Save(ctx, id, conv.Selection()); err != nil {
		logger.Log.Errorw("failed to save new session", "session_id", id, "error", err)
		return models.SessionResponse{}, err
	}

	s.mu.Lock()
	s.sessions[id] = &session{conv: conv, lastSeen: s.now()}
	s.mu.Unlock()

	logger.Log.Infow("session created", "session_id", id)
	return response(id, conv), nil
}

// View returns the current state of a session. With wait it first blocks until
// the in-flight fetch settles or ctx is done.
func (s *SessionService) View(ctx context.Context, id string, wait bool) (models.SessionResponse, error) {
	conv, err := s.conversion(ctx, id)
	if err != nil {
		return models.SessionResponse{}, err
	}
	if wait {
		if err := conv.Wait(ctx); err != nil {
			logger.Log.Debugw("stopped waiting for rate fetch", "session_id", id, "error", err)
		}
	}
	return response(id, conv), nil
}

// SelectFrom selects the source currency by code. An empty code clears it.
func (s *SessionService) SelectFrom(ctx context.Context, id, code string) (models.SessionResponse, error) {
	cur, err := s.lookup(code)
	if err != nil {
		return models.SessionResponse{}, err
	}
	return s.update(ctx, id, func(conv *Conversion) error {
		conv.SelectFrom(cur)
		return nil
	})
}

// SelectTo selects the target currency by code. An empty code clears it.
func (s *SessionService) SelectTo(ctx context.Context, id, code string) (models.SessionResponse, error) {
	cur, err := s.lookup(code)
	if err != nil {
		return models.SessionResponse{}, err
	}
	return s.update(ctx, id, func(conv *Conversion) error {
		conv.SelectTo(cur)
		return nil
	})
}

// SetAmount sets the amount from free text.
func (s *SessionService) SetAmount(ctx context.Context, id, text string) (models.SessionResponse, error) {
	return s.update(ctx, id, func(conv *Conversion) error {
		conv.SetAmountText(text)
		return nil
	})
}

// SetMode switches the data source, "latest" or "history".
func (s *SessionService) SetMode(ctx context.Context, id, mode string) (models.SessionResponse, error) {
	m, err := models.ParseMode(mode)
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return s.update(ctx, id, func(conv *Conversion) error {
		conv.SetMode(m)
		return nil
	})
}

// SetHistoryDate sets the YYYY-MM-DD date used in history mode.
func (s *SessionService) SetHistoryDate(ctx context.Context, id, date string) (models.SessionResponse, error) {
	return s.update(ctx, id, func(conv *Conversion) error {
		return conv.SetHistoryDate(date)
	})
}

// Refresh re-issues the fetch for the current selection.
func (s *SessionService) Refresh(ctx context.Context, id string) (models.SessionResponse, error) {
	conv, err := s.conversion(ctx, id)
	if err != nil {
		return models.SessionResponse{}, err
	}
	conv.Refresh()
	return response(id, conv), nil
}

// Delete drops a session and cancels its fetch.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		sess.conv.Close()
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", id, "error", err)
		return err
	}
	logger.Log.Infow("session deleted", "session_id", id)
	return nil
}

// EvictIdle unloads sessions untouched for longer than the TTL and returns how many were unloaded.
// Their selection stays in the repository until it expires there.
func (s *SessionService) EvictIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			sess.conv.Close()
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle sessions until ctx is done, then cancels every in-flight fetch.
func (s *SessionService) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				logger.Log.Infow("evicted idle sessions", "count", n)
			}
		}
	}
}

func (s *SessionService) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.conv.Close()
		delete(s.sessions, id)
	}
}

func (s *SessionService) lookup(code string) (models.Currency, error) {
	if code == "" {
		return models.Currency{}, nil
	}
	cur, err := s.catalog.Lookup(code)
	if err != nil {
		return models.Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}
	return cur, nil
}

// conversion returns the loaded view of a session, restoring it from the repository when needed.
// The repository is read without holding mu.
func (s *SessionService) conversion(ctx context.Context, id string) (*Conversion, error) {
	if conv, ok := s.loaded(id); ok {
		return conv, nil
	}

	sel, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another request may have restored it while the repository was read
	if sess, ok := s.sessions[id]; ok {
		sess.lastSeen = s.now()
		return sess.conv, nil
	}

	conv := NewConversion(s.fetcher, s.timeout)
	conv.restore(*sel)
	s.sessions[id] = &session{conv: conv, lastSeen: s.now()}

	logger.Log.Infow("session restored", "session_id", id, "from", sel.From.Code, "mode", sel.Mode)
	return conv, nil
}

func (s *SessionService) loaded(id string) (*Conversion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.conv, true
}

// update applies a change to the session and stores the resulting selection.
// If the store rejects it the view is put back on the previous selection,
// so memory never runs ahead of the repository.
func (s *SessionService) update(ctx context.Context, id string, apply func(*Conversion) error) (models.SessionResponse, error) {
	conv, err := s.conversion(ctx, id)
	if err != nil {
		return models.SessionResponse{}, err
	}

	prev := conv.Selection()
	if err := apply(conv); err != nil {
		return models.SessionResponse{}, err
	}
	if err := s.repo.Save(ctx, id, conv.Selection()); err != nil {
		logger.Log.Errorw("failed to save selection", "session_id", id, "error", err)
		conv.rollback(prev)
		return models.SessionResponse{}, err
	}
	return response(id, conv), nil
}

func response(id string, conv *Conversion) models.SessionResponse {
	return models.SessionResponse{
		ID:        id,
		Selection: conv.Selection(),
		View:      conv.View(),
	}
}
