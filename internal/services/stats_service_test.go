package services

import (
	"context"
	"errors"
	"testing"
)

type stubStatsStore struct {
	patients     int64
	patientsErr  error
	completed    int64
	completedErr error
	coaches      int64
	coachesErr   error
}

func (s *stubStatsStore) CountPatients(_ context.Context) (int64, error) {
	return s.patients, s.patientsErr
}

func (s *stubStatsStore) CountCompletedAppointments(_ context.Context) (int64, error) {
	return s.completed, s.completedErr
}

func (s *stubStatsStore) CountPsychologists(_ context.Context) (int64, error) {
	return s.coaches, s.coachesErr
}

func TestGetGlobalStatsCombinesCounts(t *testing.T) {
	service := NewStatsService(&stubStatsStore{patients: 120, completed: 48, coaches: 9})

	stats := service.GetGlobalStats(context.Background())

	if stats.RealUsers != 120 || stats.RealSessions != 48 || stats.RealCoaches != 9 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestGetGlobalStatsDegradesToZerosOnAnyFailure(t *testing.T) {
	service := NewStatsService(&stubStatsStore{
		patients:   120,
		completed:  48,
		coachesErr: errors.New("connection reset"),
	})

	stats := service.GetGlobalStats(context.Background())

	if stats.RealUsers != 0 || stats.RealSessions != 0 || stats.RealCoaches != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}
