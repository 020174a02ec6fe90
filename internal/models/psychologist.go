package models

import "time"

type Psychologist struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id"`
	FullName   string    `json:"full_name"`
	RefCode    string    `json:"ref_code"`
	HourlyRate *float64  `json:"hourly_rate"`
	CreatedAt  time.Time `json:"created_at"`
}

type GlobalStats struct {
	RealUsers    int64 `json:"realUsers"`
	RealSessions int64 `json:"realSessions"`
	RealCoaches  int64 `json:"realCoaches"`
}
