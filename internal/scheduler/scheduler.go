package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Task - один тик периодической задачи
type Task func(ctx context.Context)

// Scheduler периодически выполняет задачу с заданным интервалом.
// Start и Stop идемпотентны: повторный запуск и повторная остановка - no-op.
// Отмена проверяется только в начале итерации, начатый тик довыполняется.
type Scheduler struct {
	name     string
	interval time.Duration
	task     Task
	logger   *logrus.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(name string, interval time.Duration, task Task, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

// Start запускает горутину с циклом тикера; повторный запуск - no-op
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger.WithField("scheduler", s.name).Debug("Scheduler already running")
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	s.logger.WithField("scheduler", s.name).WithField("interval", s.interval.String()).Info("Starting scheduler")

	go s.run(loopCtx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.WithField("scheduler", s.name).Info("Stopping scheduler")
			return
		case <-ticker.C:
			s.task(ctx)
		}
	}
}

// Stop останавливает цикл и дожидается его выхода; повторная остановка - no-op
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
}
