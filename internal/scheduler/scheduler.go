// Package scheduler drives the periodic refresh of every collection target.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jorik41/entsoe-collector/internal/coordinator"
)

// refreshTimeout bounds a single refresh cycle, including retries, endpoint
// failover and the walk over all aggregated areas.
const refreshTimeout = 15 * time.Minute

type Scheduler struct {
	ctx    context.Context
	logger *logrus.Logger
	cron   *cron.Cron
}

func NewScheduler(ctx context.Context, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		ctx:    ctx,
		logger: logger,
		cron:   cron.New(),
	}
}

// Register puts a target on the refresh rotation at its horizon's cadence.
func (s *Scheduler) Register(target coordinator.Target) error {
	spec := fmt.Sprintf("@every %s", target.Describe().Interval)
	_, err := s.cron.AddFunc(spec, func() { s.refresh(target) })
	return err
}

// Start launches the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) refresh(target coordinator.Target) {
	ctx, cancel := context.WithTimeout(s.ctx, refreshTimeout)
	defer cancel()

	if err := target.Refresh(ctx); err != nil {
		s.logger.WithField("target", target.Key()).WithError(err).Error("Scheduled refresh failed")
	}
}

// Stop halts scheduling and waits for in-flight refreshes to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
