package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase/interfaces"
)

const (
	checkoutSuccessPath = "/booking-success?session_id={CHECKOUT_SESSION_ID}"
	checkoutCancelPath  = "/booking-cancelled"
	bookingMetadataKey  = "booking"
)

//go:generate mockgen -source=stripe_usecase.go -destination=../adapter/http/handlers/mocks/stripe_usecase_mock.go -package=mocks

// IStripeUseCase creates hosted checkout sessions. Completion is confirmed by
// Stripe's own redirect, so there is no verify step here.
type IStripeUseCase interface {
	CreateSession(ctx context.Context, req entities.CheckoutRequest) (string, error)
}

type StripeUseCase struct {
	gateway       interfaces.ICheckoutGateway
	defaultOrigin string
}

var _ IStripeUseCase = (*StripeUseCase)(nil)

func NewStripeUseCase(gateway interfaces.ICheckoutGateway, defaultOrigin string) *StripeUseCase {
	return &StripeUseCase{gateway: gateway, defaultOrigin: strings.TrimRight(defaultOrigin, "/")}
}

func (u *StripeUseCase) CreateSession(ctx context.Context, req entities.CheckoutRequest) (string, error) {
	log.Printf("[payment][stripe][usecase] create-session start amount=%s currency=%q origin=%q", req.Amount, req.Currency, req.Origin)
	if !entities.IsValidAmount(req.Amount) {
		log.Printf("[payment][stripe][usecase] invalid amount=%s", req.Amount)
		return "", ErrInvalidAmount
	}
	if u.gateway == nil {
		log.Printf("[payment][stripe][usecase] gateway not configured")
		return "", errors.New("stripe gateway not configured")
	}

	metadata, err := entities.CompactBooking(req.Booking)
	if err != nil {
		log.Printf("[payment][stripe][usecase] booking not serializable err=%v", err)
		return "", ErrInvalidBooking
	}

	origin := u.resolveOrigin(req.Origin)
	in := entities.CheckoutSessionInput{
		ProductName: entities.BookingProductName(req.Booking),
		AmountMinor: entities.ToMinorUnits(req.Amount),
		Currency:    strings.ToLower(entities.NormalizeCurrency(req.Currency, entities.DefaultStripeCurrency)),
		SuccessURL:  origin + checkoutSuccessPath,
		CancelURL:   origin + checkoutCancelPath,
		Metadata:    map[string]string{bookingMetadataKey: metadata},
	}

	sessionID, err := u.gateway.CreateSession(ctx, in)
	if err != nil {
		log.Printf("[payment][stripe][usecase] create-session failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][stripe][usecase] create-session success session_id=%s amount_minor=%d currency=%s", sessionID, in.AmountMinor, in.Currency)
	return sessionID, nil
}

func (u *StripeUseCase) resolveOrigin(origin string) string {
	if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
		return origin
	}
	return u.defaultOrigin
}
