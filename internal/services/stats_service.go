package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
)

type statsStore interface {
	CountPatients(ctx context.Context) (int64, error)
	CountCompletedAppointments(ctx context.Context) (int64, error)
	CountPsychologists(ctx context.Context) (int64, error)
}

type StatsService struct {
	stats statsStore
}

func NewStatsService(stats statsStore) *StatsService {
	return &StatsService{stats: stats}
}

// GetGlobalStats runs the three counts concurrently. If any of them fails the
// whole result degrades to zeros; partial numbers are never returned.
func (s *StatsService) GetGlobalStats(ctx context.Context) models.GlobalStats {
	var users, sessions, coaches int64

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.stats.CountPatients(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.stats.CountCompletedAppointments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		coaches, err = s.stats.CountPsychologists(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("global stats query failed: %v", err)
		return models.GlobalStats{}
	}

	return models.GlobalStats{
		RealUsers:    users,
		RealSessions: sessions,
		RealCoaches:  coaches,
	}
}
