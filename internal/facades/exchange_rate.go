package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultBaseURL is the exchangerate-api.com v6 endpoint.
const DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

const resultSuccess = "success"

// ErrorTypeBaseMismatch is reported when the provider answers for another base currency.
const ErrorTypeBaseMismatch = "base-code-mismatch"

// ErrInvalidDate is returned when a history date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid history date")

// TransportError means the HTTP call itself failed or returned something
// that is not a provider envelope.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProviderError means the provider answered but signalled a failure.
type ProviderError struct {
	// Type is the provider's "error-type", e.g. "unsupported-code" or "plan-upgrade-required"
	Type string
}

func (e *ProviderError) Error() string {
	if e.Type == "" {
		return "provider returned an unsuccessful result"
	}
	return e.Type
}

// PlanRestricted reports whether the failure is caused by the account tier.
func (e *ProviderError) PlanRestricted() bool {
	return strings.Contains(e.Type, "plan")
}

// exchangeRateEnvelope is the response body of every v6 endpoint
type exchangeRateEnvelope struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type,omitempty"`
	Year            int                `json:"year,omitempty"`
	Month           int                `json:"month,omitempty"`
	Day             int                `json:"day,omitempty"`
}

// ExchangeRateHTTPFacade fetches rate snapshots from the exchange-rate provider.
type ExchangeRateHTTPFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExchangeRateHTTPFacade creates a facade. A nil client uses http.DefaultClient.
func NewExchangeRateHTTPFacade(baseURL, apiKey string, client *http.Client) *ExchangeRateHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ExchangeRateHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// FetchLatest returns the latest rates for the base currency.
func (f *ExchangeRateHTTPFacade) FetchLatest(ctx context.Context, code string) (*models.RateSnapshot, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", f.baseURL, f.apiKey, code)

	snapshot, err := f.fetch(ctx, code, endpoint)
	if err != nil {
		logger.Log.Errorw("failed to fetch latest exchange rates", "base", code, "error", err)
		return nil, err
	}
	snapshot.Mode = models.ModeLatest
	return snapshot, nil
}

// FetchHistory returns the rates of the base currency on the given YYYY-MM-DD date.
func (f *ExchangeRateHTTPFacade) FetchHistory(ctx context.Context, code, date string) (*models.RateSnapshot, error) {
	day, err := time.Parse(models.HistoryDateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	endpoint := fmt.Sprintf("%s/%s/history/%s/%d/%d/%d",
		f.baseURL, f.apiKey, code, day.Year(), int(day.Month()), day.Day())

	snapshot, err := f.fetch(ctx, code, endpoint)
	if err != nil {
		logger.Log.Errorw("failed to fetch historical exchange rates", "base", code, "date", date, "error", err)
		return nil, err
	}
	snapshot.Mode = models.ModeHistory
	snapshot.Date = date
	return snapshot, nil
}

// fetch calls endpoint for the rate table of code.
func (f *ExchangeRateHTTPFacade) fetch(ctx context.Context, code, endpoint string) (*models.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// url.Error carries the request URL, which contains the API key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = fmt.Errorf("%s request: %w", uerr.Op, uerr.Err)
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	// error responses carry the same envelope, so decode before looking at the status
	var env exchangeRateEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Result == "" {
		if resp.StatusCode != http.StatusOK {
			return nil, &TransportError{Err: fmt.Errorf("http status: %d, %s", resp.StatusCode, resp.Status)}
		}
		if err == nil {
			err = errors.New("missing result field")
		}
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}

	if env.Result != resultSuccess {
		return nil, &ProviderError{Type: env.ErrorType}
	}

	// base_code is optional in the envelope; the table belongs to the requested code
	base := code
	if env.BaseCode != "" {
		if !strings.EqualFold(env.BaseCode, code) {
			return nil, &ProviderError{Type: ErrorTypeBaseMismatch}
		}
		base = env.BaseCode
	}

	return &models.RateSnapshot{
		BaseCode:  strings.ToUpper(base),
		Rates:     env.ConversionRates,
		FetchedAt: time.Now(),
	}, nil
}
