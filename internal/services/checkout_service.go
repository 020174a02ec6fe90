package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/payments"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// Falls back when an appointment was booked without an agreed price.
const defaultSessionPrice = 35.0

type appointmentCheckoutStore interface {
	GetDetailByID(ctx context.Context, appointmentID int64) (*models.AppointmentDetail, error)
	SetStripeSessionID(ctx context.Context, appointmentID int64, sessionID string) error
}

type checkoutGateway interface {
	CreateCheckoutSession(ctx context.Context, input payments.CheckoutSessionInput) (*payments.CheckoutSession, error)
}

type CheckoutService struct {
	appointments appointmentCheckoutStore
	gateway      checkoutGateway
	appBaseURL   string
}

func NewCheckoutService(
	appointments appointmentCheckoutStore,
	gateway checkoutGateway,
	appBaseURL string,
) *CheckoutService {
	return &CheckoutService{
		appointments: appointments,
		gateway:      gateway,
		appBaseURL:   appBaseURL,
	}
}

// CreateCheckoutSession builds a hosted payment session for the appointment,
// persists the returned session id and hands back the payment URL.
func (s *CheckoutService) CreateCheckoutSession(
	ctx context.Context,
	appointmentID int64,
	returnURL string,
) (string, error) {
	if appointmentID <= 0 {
		return "", ErrInvalidInput
	}

	detail, err := s.appointments.GetDetailByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrAppointmentNotFound
		}
		return "", err
	}

	price := defaultSessionPrice
	if detail.Price != nil && *detail.Price > 0 {
		price = *detail.Price
	}
	amountMinor := int64(math.Round(price * 100))

	base := s.appBaseURL
	if returnURL != "" {
		base = returnURL
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payments.CheckoutSessionInput{
		AppointmentID: appointmentID,
		AmountMinor:   amountMinor,
		ProductName:   fmt.Sprintf("Wellness session with %s", detail.PsychologistName),
		Description: fmt.Sprintf(
			"Session with %s on %s",
			detail.PsychologistName,
			detail.ScheduledAt.Format("January 2, 2006 at 15:04"),
		),
		SuccessURL: base + "/patient/appointments?payment=success",
		CancelURL:  base + "/patient/appointments?payment=cancelled",
	})
	if err != nil {
		return "", err
	}

	if err := s.appointments.SetStripeSessionID(ctx, appointmentID, session.ID); err != nil {
		return "", err
	}

	return session.URL, nil
}
