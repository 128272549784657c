package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultFetchTimeout bounds a single provider call.
const DefaultFetchTimeout = 10 * time.Second

// RateFetcher fetches the full rate table of one base currency
//
//go:generate mockgen -source conversion.go -destination mock_conversion.go -package services
type RateFetcher interface {
	FetchLatest(ctx context.Context, code string) (*models.RateSnapshot, error)
	FetchHistory(ctx context.Context, code, date string) (*models.RateSnapshot, error)
}

// Conversion is one conversion view: the user's selection, the fetch controller
// and the latest successful snapshot.
//
// A fetch is issued only when From or Mode changes, or on Refresh. Every fetch carries
// a token; only the completion holding the latest token is applied, and starting
// a fetch cancels the one it supersedes.
type Conversion struct {
	fetcher RateFetcher
	timeout time.Duration

	mu       sync.Mutex
	sel      models.Selection
	snapshot *models.RateSnapshot // last known good, never merged
	errText  string
	loading  bool
	token    uint64
	cancel   context.CancelFunc
	idle     chan struct{} // closed while no fetch is in flight
}

// NewConversion returns an idle conversion view in latest mode.
func NewConversion(fetcher RateFetcher, timeout time.Duration) *Conversion {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	idle := make(chan struct{})
	close(idle)
	return &Conversion{
		fetcher: fetcher,
		timeout: timeout,
		sel:     models.Selection{Mode: models.ModeLatest},
		idle:    idle,
	}
}

// Selection returns a copy of the current selection.
func (c *Conversion) Selection() models.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// View derives the presentation from the current state.
func (c *Conversion) View() models.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Present(c.sel, c.snapshot, c.errText, c.loading)
}

// SelectFrom sets the source currency. An empty currency clears it.
func (c *Conversion) SelectFrom(cur models.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := cur.Code != c.sel.From.Code
	c.sel.From = cur
	if changed {
		c.trigger()
	}
}

// SelectTo sets the target currency. It never fetches.
func (c *Conversion) SelectTo(cur models.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.To = cur
}

// SetAmount sets the amount. It never fetches.
func (c *Conversion) SetAmount(amount float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Amount = amount
}

// SetAmountText sets the amount from the text typed by the user.
// Anything that is not a number counts as 0.
func (c *Conversion) SetAmountText(text string) {
	c.SetAmount(ParseAmount(text))
}

// SetMode switches between latest and historical rates.
func (c *Conversion) SetMode(mode models.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := mode != c.sel.Mode
	c.sel.Mode = mode
	if changed {
		c.trigger()
	}
}

// SetHistoryDate sets the YYYY-MM-DD date used in history mode.
// Changing the date alone does not fetch; call Refresh.
// TODO: decide with product whether a date change in history mode should fetch like a mode change does.
func (c *Conversion) SetHistoryDate(date string) error {
	if _, err := time.Parse(models.HistoryDateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", facades.ErrInvalidDate, date)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.HistoryDate = date
	return nil
}

// Refresh re-issues the fetch for the current selection.
// Without a source currency it records a precondition error and makes no call.
func (c *Conversion) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sel.From.IsEmpty() {
		c.supersede()
		c.errText = Describe(errFromNotSelected, c.sel.Mode)
		return
	}
	c.start()
}

// Wait blocks until no fetch is in flight or ctx is done.
func (c *Conversion) Wait(ctx context.Context) error {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels the in-flight fetch, if any.
func (c *Conversion) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersede()
}

// restore replaces the whole selection, as when a session is reloaded,
// and fetches for it.
func (c *Conversion) restore(sel models.Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sel.Mode == "" {
		sel.Mode = models.ModeLatest
	}
	c.sel = sel
	c.trigger()
}

// rollback puts back a selection the caller could not store. Like the setters
// it fetches again only when From or Mode differ.
func (c *Conversion) rollback(sel models.Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := sel.From.Code != c.sel.From.Code || sel.Mode != c.sel.Mode
	c.sel = sel
	if changed {
		c.trigger()
	}
}

// trigger reacts to a From or Mode change. Callers hold mu.
func (c *Conversion) trigger() {
	if c.sel.From.IsEmpty() {
		// a cleared picker hides the result without complaining
		c.supersede()
		c.errText = ""
		return
	}
	c.start()
}

// start issues a fetch for the current selection. Callers hold mu.
func (c *Conversion) start() {
	c.supersede()

	if c.sel.Mode == models.ModeHistory && c.sel.HistoryDate == "" {
		c.errText = Describe(errDateNotSelected, c.sel.Mode)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	c.cancel = cancel
	c.loading = true
	c.idle = make(chan struct{})

	go c.run(ctx, c.token, c.sel)
}

// supersede fences off the in-flight fetch so its completion is discarded. Callers hold mu.
func (c *Conversion) supersede() {
	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.loading {
		c.loading = false
		close(c.idle)
	}
}

func (c *Conversion) run(ctx context.Context, token uint64, sel models.Selection) {
	var (
		snapshot *models.RateSnapshot
		err      error
	)
	defer func() {
		if r := recover(); r != nil {
			snapshot, err = nil, fmt.Errorf("fetch rates: %v", r)
		}
		c.complete(token, sel, snapshot, err)
	}()

	if sel.Mode == models.ModeHistory {
		snapshot, err = c.fetcher.FetchHistory(ctx, sel.From.Code, sel.HistoryDate)
	} else {
		snapshot, err = c.fetcher.FetchLatest(ctx, sel.From.Code)
	}
}

func (c *Conversion) complete(token uint64, sel models.Selection, snapshot *models.RateSnapshot, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		logger.Log.Debugw("discarding superseded rate fetch", "base", sel.From.Code, "mode", sel.Mode)
		return
	}

	c.cancel()
	c.cancel = nil
	c.loading = false
	close(c.idle)

	if err != nil {
		c.errText = Describe(err, sel.Mode)
		logger.Log.Infow("rate fetch failed", "base", sel.From.Code, "mode", sel.Mode, "error", err)
		return
	}
	if snapshot == nil {
		c.errText = Describe(&facades.TransportError{Err: fmt.Errorf("empty response")}, sel.Mode)
		return
	}

	c.snapshot = snapshot
	c.errText = ""
	logger.Log.Debugw("rate fetch completed", "base", snapshot.BaseCode, "mode", sel.Mode, "rates", len(snapshot.Rates))
}

// ParseAmount coerces user text to a number; anything else is 0.
func ParseAmount(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
