package payment

import (
	"context"
	"errors"
)

// ErrPaymentFailed wraps any gateway-side decline or error; the reason
// is surfaced to the caller, never retried here.
var ErrPaymentFailed = errors.New("payment failed")

// Gateway initiates a payment for an amount in the currency's smallest
// unit (paise for INR) and returns the provider's payment id.
type Gateway interface {
	Create(ctx context.Context, amountPaise int64, currency, receipt string) (string, error)
}
