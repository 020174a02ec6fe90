package repository

import (
	"context"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
)

type AppointmentRepository struct {
	db DBTX
}

func NewAppointmentRepository(db DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) GetByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	query := `
		SELECT id, psychologist_id, patient_id, scheduled_at, price, status, payment_status, stripe_session_id, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment models.Appointment
	err := r.db.QueryRow(ctx, query, appointmentID).Scan(
		&appointment.ID,
		&appointment.PsychologistID,
		&appointment.PatientID,
		&appointment.ScheduledAt,
		&appointment.Price,
		&appointment.Status,
		&appointment.PaymentStatus,
		&appointment.StripeSessionID,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) GetDetailByID(ctx context.Context, appointmentID int64) (*models.AppointmentDetail, error) {
	query := `
		SELECT a.id, a.psychologist_id, a.patient_id, a.scheduled_at, a.price, a.status,
			   a.payment_status, a.stripe_session_id, a.created_at, a.updated_at, p.full_name
		FROM appointments a
		JOIN psychologists p ON p.id = a.psychologist_id
		WHERE a.id = $1
	`
	var detail models.AppointmentDetail
	err := r.db.QueryRow(ctx, query, appointmentID).Scan(
		&detail.ID,
		&detail.PsychologistID,
		&detail.PatientID,
		&detail.ScheduledAt,
		&detail.Price,
		&detail.Status,
		&detail.PaymentStatus,
		&detail.StripeSessionID,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.PsychologistName,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *AppointmentRepository) SetStripeSessionID(ctx context.Context, appointmentID int64, sessionID string) error {
	query := `
		UPDATE appointments
		SET stripe_session_id = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, appointmentID, sessionID)
	return err
}

func (r *AppointmentRepository) MarkPaid(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	query := `
		UPDATE appointments
		SET payment_status = 'paid', status = 'scheduled', updated_at = NOW()
		WHERE id = $1
		RETURNING id, psychologist_id, patient_id, scheduled_at, price, status, payment_status, stripe_session_id, created_at, updated_at
	`
	var appointment models.Appointment
	err := r.db.QueryRow(ctx, query, appointmentID).Scan(
		&appointment.ID,
		&appointment.PsychologistID,
		&appointment.PatientID,
		&appointment.ScheduledAt,
		&appointment.Price,
		&appointment.Status,
		&appointment.PaymentStatus,
		&appointment.StripeSessionID,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
