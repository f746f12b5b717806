// Package scheduler drives the daily check-in reminder.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	remindFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetReminderFunction sets the callback invoked on schedule.
func (s *Scheduler) SetReminderFunction(f func(ctx context.Context) error) {
	s.remindFunc = f
}

// Start registers the cron spec and begins ticking. Without a reminder
// function the scheduler stays inert.
func (s *Scheduler) Start(spec string) error {
	if s.remindFunc == nil {
		log.Println("reminder function not set, scheduler will not run")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		if err := s.remindFunc(s.ctx); err != nil {
			log.Printf("daily reminder failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("scheduler started, reminder cron: %q", spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
