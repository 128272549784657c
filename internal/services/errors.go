package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidMode     = errors.New("invalid mode")
)

// PreconditionError means a fetch was attempted without the inputs it needs.
// No network call is made.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

var (
	errFromNotSelected = &PreconditionError{Reason: "From currency is not selected"}
	errDateNotSelected = &PreconditionError{Reason: "Date for historical rates is not selected"}
)

// Describe converts a fetch failure into the text shown next to the converter.
func Describe(err error, mode models.Mode) string {
	var (
		precondition *PreconditionError
		provider     *facades.ProviderError
		transport    *facades.TransportError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &precondition):
		return precondition.Reason
	case errors.As(err, &provider):
		if provider.PlanRestricted() {
			if mode == models.ModeHistory {
				return fmt.Sprintf("historical exchange rates are not available on the current plan (%s)", provider.Type)
			}
			return fmt.Sprintf("this feature is not available on the current plan (%s)", provider.Type)
		}
		return fmt.Sprintf("exchange rate provider error: %s", provider.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return "exchange rate request timed out"
	case errors.As(err, &transport):
		return transport.Error()
	default:
		return err.Error()
	}
}
