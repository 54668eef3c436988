package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"taskmanager/pkg/logger"
)

// EventScheduler runs periodic maintenance jobs, currently only the
// recurring-task reopener.
type EventScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	IsRunning() bool
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*gocron.Job
	mu        sync.Mutex
	running   bool
}

func NewEventScheduler() EventScheduler {
	s := gocron.NewScheduler(time.UTC)
	// A slow run must not overlap with the next tick of the same job.
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*gocron.Job),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Event scheduler started")
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.running = false
	logger.Info("Event scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %q already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		logger.Debug("Executing scheduled job", "job", id)
		task()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %q: %w", id, err)
	}

	s.jobs[id] = job
	logger.Info("Scheduled job registered", "job", id, "cron", cronExpr)
	return nil
}
