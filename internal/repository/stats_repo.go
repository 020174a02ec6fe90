package repository

import "context"

type StatsRepository struct {
	db DBTX
}

func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountPatients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'patient'`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatsRepository) CountCompletedAppointments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE status = 'completed'`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatsRepository) CountPsychologists(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM psychologists`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
