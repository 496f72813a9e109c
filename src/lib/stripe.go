package lib

import (
	"context"
	"log"
	"math"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// CreatePaymentIntent opens a Stripe PaymentIntent for an online payment
// and returns its id for the payment record's transaction reference.
func CreatePaymentIntent(ctx context.Context, amount float64, currency, description string) (string, error) {
	sc := GetStripeClient()
	cents := int64(math.Round(amount * 100))
	pi, err := sc.V1PaymentIntents.Create(ctx, &stripe.PaymentIntentCreateParams{
		Amount:      stripe.Int64(cents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	})
	if err != nil {
		log.Printf("[Stripe] Error creating PaymentIntent: %s\n", err.Error())
		return "", err
	}
	log.Printf("[PaymentIntent] ID: %s %s\n", pi.ID, pi.Status)
	return pi.ID, nil
}
