package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type sessionMocks struct {
	fetcher *MockRateFetcher
	catalog *MockCurrencyCatalog
	repo    *MockSelectionRepository
}

func newSessionService(t *testing.T) (*SessionService, sessionMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sessionMocks{
		fetcher: NewMockRateFetcher(ctrl),
		catalog: NewMockCurrencyCatalog(ctrl),
		repo:    NewMockSelectionRepository(ctrl),
	}
	svc := NewSessionService(m.fetcher, m.catalog, m.repo, time.Second, time.Minute)
	t.Cleanup(svc.closeAll)
	return svc, m
}

func TestSessionService_Create(t *testing.T) {
	svc, m := newSessionService(t)

	m.repo.EXPECT().
		Save(gomock.Any(), gomock.Any(), models.Selection{Mode: models.ModeLatest}).
		Return(nil)

	resp, err := svc.Create(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ModeLatest, resp.Selection.Mode)
	assert.False(t, resp.View.ShowResult)
}

func TestSessionService_CreateSaveError(t *testing.T) {
	svc, m := newSessionService(t)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.Create(context.Background())
	assert.EqualError(t, err, "redis down")
	assert.Empty(t, svc.sessions)
}

func TestSessionService_ConvertFlow(t *testing.T) {
	svc, m := newSessionService(t)
	ctx := context.Background()

	m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
	m.catalog.EXPECT().Lookup("usd").Return(usd, nil)
	m.catalog.EXPECT().Lookup("EUR").Return(eur, nil)
	m.fetcher.EXPECT().
		FetchLatest(gomock.Any(), "USD").
		Return(latest("USD", map[string]float64{"EUR": 0.92}), nil).
		Times(1)

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	id := created.ID

	_, err = svc.SetAmount(ctx, id, "10")
	require.NoError(t, err)
	_, err = svc.SelectTo(ctx, id, "EUR")
	require.NoError(t, err)
	resp, err := svc.SelectFrom(ctx, id, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Selection.From.Code)

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	resp, err = svc.View(waitCtx, id, true)
	require.NoError(t, err)

	assert.Equal(t, id, resp.ID)
	assert.True(t, resp.View.ShowResult)
	assert.Equal(t, "9.20000 EUR", resp.View.ResultLine)
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc, m := newSessionService(t)
	m.repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil).Times(2)

	_, err := svc.View(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SetAmount(context.Background(), "missing", "1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_RepositoryError(t *testing.T) {
	svc, m := newSessionService(t)
	m.repo.EXPECT().Get(gomock.Any(), "s1").Return(nil, errors.New("connection reset"))

	_, err := svc.View(context.Background(), "s1", false)
	assert.EqualError(t, err, "connection reset")
}

func TestSessionService_RestoresAndRefetches(t *testing.T) {
	svc, m := newSessionService(t)

	stored := &models.Selection{From: usd, To: eur, Amount: 2, Mode: models.ModeLatest}
	m.repo.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil).Times(1)
	m.fetcher.EXPECT().
		FetchLatest(gomock.Any(), "USD").
		Return(latest("USD", map[string]float64{"EUR": 0.5}), nil).
		Times(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := svc.View(ctx, "s1", true)
	require.NoError(t, err)
	assert.Equal(t, "1.00000 EUR", resp.View.ResultLine)

	// loaded sessions are not read again
	_, err = svc.View(ctx, "s1", false)
	require.NoError(t, err)
}

func TestSessionService_ConcurrentRestoreLoadsOnce(t *testing.T) {
	svc, m := newSessionService(t)

	stored := &models.Selection{From: usd, To: eur, Amount: 2, Mode: models.ModeLatest}
	arrived := make(chan struct{})
	release := make(chan struct{})
	m.repo.EXPECT().
		Get(gomock.Any(), "s1").
		DoAndReturn(func(ctx context.Context, id string) (*models.Selection, error) {
			arrived <- struct{}{}
			<-release
			return stored, nil
		}).
		Times(2)
	m.fetcher.EXPECT().
		FetchLatest(gomock.Any(), "USD").
		Return(latest("USD", map[string]float64{"EUR": 0.5}), nil).
		Times(1)

	results := make(chan *Conversion, 2)
	for i := 0; i < 2; i++ {
		go func() {
			conv, err := svc.conversion(context.Background(), "s1")
			assert.NoError(t, err)
			results <- conv
		}()
	}

	// both readers reach the repository at once, so it is not read under the service lock
	for i := 0; i < 2; i++ {
		select {
		case <-arrived:
		case <-time.After(time.Second):
			t.Fatal("repository read blocked by a concurrent restore")
		}
	}
	close(release)

	first, second := <-results, <-results
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Len(t, svc.sessions, 1)
	waitIdle(t, first)
}

func TestSessionService_SaveErrorRollsBack(t *testing.T) {
	svc, m := newSessionService(t)

	stored := &models.Selection{From: usd, To: eur, Amount: 2, Mode: models.ModeLatest}
	m.repo.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil)
	m.repo.EXPECT().Save(gomock.Any(), "s1", gomock.Any()).Return(errors.New("redis down")).Times(2)
	m.catalog.EXPECT().Lookup("GBP").Return(gbp, nil)
	m.fetcher.EXPECT().
		FetchLatest(gomock.Any(), "USD").
		Return(latest("USD", map[string]float64{"EUR": 0.5}), nil).
		Times(2)
	m.fetcher.EXPECT().
		FetchLatest(gomock.Any(), "GBP").
		Return(latest("GBP", map[string]float64{"EUR": 1.17}), nil).
		AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := svc.View(ctx, "s1", true)
	require.NoError(t, err)

	_, err = svc.SetAmount(ctx, "s1", "10")
	assert.EqualError(t, err, "redis down")

	resp, err := svc.View(ctx, "s1", true)
	require.NoError(t, err)
	assert.Equal(t, *stored, resp.Selection)
	assert.Equal(t, "1.00000 EUR", resp.View.ResultLine)

	// a rejected source change fetches the stored source again
	_, err = svc.SelectFrom(ctx, "s1", "GBP")
	assert.EqualError(t, err, "redis down")

	resp, err = svc.View(ctx, "s1", true)
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Selection.From.Code)
	assert.Equal(t, "1.00000 EUR", resp.View.ResultLine)
}

func TestSessionService_UnknownCurrency(t *testing.T) {
	svc, m := newSessionService(t)
	m.catalog.EXPECT().Lookup("XXX").Return(models.Currency{}, errors.New("not in table"))

	_, err := svc.SelectFrom(context.Background(), "s1", "XXX")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestSessionService_EmptyCodeClears(t *testing.T) {
	svc, m := newSessionService(t)

	stored := &models.Selection{To: eur, Mode: models.ModeLatest}
	m.repo.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil)
	m.repo.EXPECT().
		Save(gomock.Any(), "s1", models.Selection{Mode: models.ModeLatest}).
		Return(nil)

	resp, err := svc.SelectTo(context.Background(), "s1", "")
	require.NoError(t, err)
	assert.True(t, resp.Selection.To.IsEmpty())
}

func TestSessionService_SetModeAndDate(t *testing.T) {
	svc, m := newSessionService(t)
	ctx := context.Background()

	m.repo.EXPECT().Get(gomock.Any(), "s1").Return(&models.Selection{From: usd, Mode: models.ModeHistory}, nil)
	m.repo.EXPECT().Save(gomock.Any(), "s1", gomock.Any()).Return(nil).Times(2)
	m.fetcher.EXPECT().
		FetchHistory(gomock.Any(), "USD", "2024-01-05").
		Return(&models.RateSnapshot{BaseCode: "USD", Mode: models.ModeHistory, Date: "2024-01-05"}, nil)

	// restored history session without a date cannot fetch
	resp, err := svc.View(ctx, "s1", false)
	require.NoError(t, err)
	assert.Equal(t, "Date for historical rates is not selected", resp.View.Error)

	_, err = svc.SetMode(ctx, "s1", "monthly")
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = svc.SetHistoryDate(ctx, "s1", "2024/01/05")
	assert.ErrorIs(t, err, facades.ErrInvalidDate)

	resp, err = svc.SetHistoryDate(ctx, "s1", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", resp.Selection.HistoryDate)

	_, err = svc.Refresh(ctx, "s1")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	resp, err = svc.View(waitCtx, "s1", true)
	require.NoError(t, err)
	assert.Empty(t, resp.View.Error)

	resp, err = svc.SetMode(ctx, "s1", "history")
	require.NoError(t, err)
	assert.Equal(t, models.ModeHistory, resp.Selection.Mode)
}

func TestSessionService_Delete(t *testing.T) {
	svc, m := newSessionService(t)
	ctx := context.Background()

	m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	created, err := svc.Create(ctx)
	require.NoError(t, err)

	m.repo.EXPECT().Delete(gomock.Any(), created.ID).Return(nil)
	require.NoError(t, svc.Delete(ctx, created.ID))

	m.repo.EXPECT().Get(gomock.Any(), created.ID).Return(nil, nil)
	_, err = svc.View(ctx, created.ID, false)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_EvictIdle(t *testing.T) {
	svc, m := newSessionService(t)
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	first, err := svc.Create(ctx)
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	second, err := svc.Create(ctx)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, svc.EvictIdle())
	assert.NotContains(t, svc.sessions, first.ID)
	assert.Contains(t, svc.sessions, second.ID)

	// an evicted session is restored on next use
	m.repo.EXPECT().Get(gomock.Any(), first.ID).Return(&models.Selection{Mode: models.ModeLatest}, nil)
	_, err = svc.View(ctx, first.ID, false)
	assert.NoError(t, err)
}

func TestSessionService_RunStopsWithContext(t *testing.T) {
	svc, _ := newSessionService(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
