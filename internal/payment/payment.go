// Package payment starts a hosted checkout for the unlimited-analysis
// tier. Settlement is entirely the payment provider's problem; the client
// only obtains a checkout URL and sends the user there.
package payment

import (
	"context"
	"fmt"

	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/intake"
)

const (
	// DefaultAmount is the Tennis Analysis Pro price in cents.
	DefaultAmount = 4900

	// DefaultProductName is the checkout line item.
	DefaultProductName = "Tennis Analysis Pro"
)

// Checkout validates the email and creates a checkout session, returning
// the hosted checkout URL to redirect the user to.
func Checkout(ctx context.Context, client *api.Client, email string, amount int, productName string) (string, error) {
	if email == "" || !intake.ValidEmail(email) {
		return "", &intake.ValidationError{
			Field:   "email",
			Message: "Please enter a valid email address (must contain @ and .)",
		}
	}
	if amount <= 0 {
		return "", fmt.Errorf("amount must be positive, got %d", amount)
	}
	if productName == "" {
		productName = DefaultProductName
	}

	return client.CreatePayment(ctx, api.PaymentRequest{
		Email:       email,
		Amount:      amount,
		ProductName: productName,
	})
}
