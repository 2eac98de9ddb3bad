package services

import (
	"context"
	"time"

	"github.com/madflojo/tasks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/osamigbe/account-service/config"
)

var accountsTotal = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "accounts_total",
	Help: "Number of accounts currently stored.",
})

// StatsService keeps the accounts_total gauge fresh by counting rows on a
// fixed schedule.
type StatsService interface {
	PublishSnapshot(ctx context.Context) error
}

func NewStatsService(cfg *config.Config, account AccountService, scheduler *tasks.Scheduler, log *zap.Logger) (StatsService, error) {
	s := &statsService{
		service: service{
			accountService: account,
			log:            log,
		},
		scheduler: scheduler,
	}

	_, err := s.scheduler.Add(&tasks.Task{
		Interval: cfg.StatsInterval,
		TaskFunc: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.PublishSnapshot(ctx)
		},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

type statsService struct {
	service
	scheduler *tasks.Scheduler
}

func (s *statsService) PublishSnapshot(ctx context.Context) error {
	count, err := s.accountService.CountAccounts(ctx)
	if err != nil {
		s.log.Error("refreshing account count", zap.Error(err))
		return err
	}

	accountsTotal.Set(float64(count))
	s.log.Info("account count refreshed", zap.Uint64("accounts", count))

	return nil
}
