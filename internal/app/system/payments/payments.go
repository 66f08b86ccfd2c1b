// internal/app/system/payments/payments.go

// Package payments wraps the payment processor behind a narrow
// interface so handlers never see the provider SDK and tests can
// substitute a fake.
package payments

import (
	"context"
	"errors"
)

// ErrGatewayDisabled is returned when no payment provider is
// configured.
var ErrGatewayDisabled = errors.New("payment gateway is not configured")

// Intent is the provider-created payment intent: the id for records
// and the client secret the browser completes payment with.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents. Amounts are integer cents.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (Intent, error)
}
