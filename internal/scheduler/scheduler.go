package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderDispatcher interface {
	DispatchDueReminders(ctx context.Context) (int, error)
}

// Scheduler drives the periodic reminder scan. Dispatch failures are logged
// and retried on the next tick; they never stop the loop.
type Scheduler struct {
	reservations reminderDispatcher
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations reminderDispatcher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.reservations.DispatchDueReminders(ctx)
	if err != nil {
		s.logger.Error("reminder scan failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("reminder scan finished",
			logger.Int("sent", sent),
		)
	}
}
