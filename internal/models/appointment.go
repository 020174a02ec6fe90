package models

import "time"

const (
	AppointmentPending   = "pending"
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

type Appointment struct {
	ID              int64     `json:"id"`
	PsychologistID  int64     `json:"psychologist_id"`
	PatientID       int64     `json:"patient_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Price           *float64  `json:"price"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	StripeSessionID *string   `json:"stripe_session_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppointmentDetail carries the psychologist's display name alongside the
// appointment, as the checkout line item and the dashboard both need it.
type AppointmentDetail struct {
	Appointment
	PsychologistName string `json:"psychologist_name"`
}
