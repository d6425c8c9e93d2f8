package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"pawhub/models"
)

// PaymentHandler prepares the payment for a booking before it is persisted.
// CancelPayment voids a prepared payment when the booking is abandoned
// before insert.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, b *models.Booking) (models.Payment, error)
	CancelPayment(ctx context.Context, payment models.Payment) error
}

// StripePaymentHandler creates Stripe payment intents for card payments.
// Cash payments stay pending until settled in person.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs the production payment handler.
func NewPaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, b *models.Booking) (models.Payment, error) {
	payment := b.Payment
	if payment.Amount <= 0 {
		return payment, errors.New("invalid payment amount")
	}

	switch payment.Method {
	case "card":
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(math.Round(payment.Amount * 100))),
			Currency: stripe.String(strings.ToLower(payment.Currency)),
			Metadata: map[string]string{
				"bookingId":   b.BookingID,
				"serviceType": b.ServiceType,
			},
		}
		params.Context = ctx
		intent, err := paymentintent.New(params)
		if err != nil {
			return payment, fmt.Errorf("failed to create payment intent: %w", err)
		}
		payment.PaymentIntentID = intent.ID
		payment.Status = "pending"
		h.logger.Info("payment intent created",
			zap.String("bookingID", b.BookingID),
			zap.String("paymentIntentID", intent.ID))
	case "cash":
		payment.Status = "pending"
		h.logger.Info("cash payment recorded", zap.String("bookingID", b.BookingID))
	default:
		return payment, fmt.Errorf("unsupported payment method: %s", payment.Method)
	}

	return payment, nil
}

// CancelPayment voids the Stripe payment intent, if one was created. Cash
// payments carry no intent and cancel as a no-op.
func (h *StripePaymentHandler) CancelPayment(ctx context.Context, payment models.Payment) error {
	if payment.PaymentIntentID == "" {
		return nil
	}
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(payment.PaymentIntentID, params); err != nil {
		return fmt.Errorf("failed to cancel payment intent: %w", err)
	}
	h.logger.Info("payment intent cancelled",
		zap.String("paymentIntentID", payment.PaymentIntentID))
	return nil
}
