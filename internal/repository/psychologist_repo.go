package repository

import (
	"context"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
)

type PsychologistRepository struct {
	db DBTX
}

func NewPsychologistRepository(db DBTX) *PsychologistRepository {
	return &PsychologistRepository{db: db}
}

func (r *PsychologistRepository) Create(ctx context.Context, psychologist *models.Psychologist) error {
	query := `
		INSERT INTO psychologists (user_id, full_name, ref_code, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		psychologist.UserID,
		psychologist.FullName,
		psychologist.RefCode,
		psychologist.HourlyRate,
	).Scan(&psychologist.ID, &psychologist.CreatedAt)
}

func (r *PsychologistRepository) GetByID(ctx context.Context, id int64) (*models.Psychologist, error) {
	query := `
		SELECT id, user_id, full_name, ref_code, hourly_rate, created_at
		FROM psychologists
		WHERE id = $1
	`
	var psychologist models.Psychologist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&psychologist.ID,
		&psychologist.UserID,
		&psychologist.FullName,
		&psychologist.RefCode,
		&psychologist.HourlyRate,
		&psychologist.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &psychologist, nil
}

func (r *PsychologistRepository) GetByRefCode(ctx context.Context, refCode string) (*models.Psychologist, error) {
	query := `
		SELECT id, user_id, full_name, ref_code, hourly_rate, created_at
		FROM psychologists
		WHERE ref_code = $1
	`
	var psychologist models.Psychologist
	err := r.db.QueryRow(ctx, query, refCode).Scan(
		&psychologist.ID,
		&psychologist.UserID,
		&psychologist.FullName,
		&psychologist.RefCode,
		&psychologist.HourlyRate,
		&psychologist.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &psychologist, nil
}
