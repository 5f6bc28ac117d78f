package simulator

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"paisa/internal/errors"
)

type service struct {
	cfg     Config
	profile Profile
	logger  *zap.Logger
	rand    RandomSource
	sleep   SleepFunc
	now     Clock
}

// Option overrides one of the service's impure dependencies.
type Option func(*service)

// WithRandomSource replaces the source behind the delay spread and the
// failure roll.
func WithRandomSource(r RandomSource) Option {
	return func(s *service) { s.rand = r }
}

// WithSleep replaces the delay implementation.
func WithSleep(fn SleepFunc) Option {
	return func(s *service) { s.sleep = fn }
}

// WithClock replaces the time source.
func WithClock(fn Clock) Option {
	return func(s *service) { s.now = fn }
}

type defaultRand struct{}

func (defaultRand) Float64() float64 { return rand.Float64() }

// NewService creates a simulated backend. Production defaults are real
// randomness and real sleeping; tests override them through options.
func NewService(cfg Config, profile Profile, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{
		cfg:     cfg,
		profile: profile,
		logger:  logger,
		rand:    defaultRand{},
		sleep:   time.Sleep,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// simulate applies the artificial latency and the uniform failure roll.
// The roll happens before any business logic in every operation.
func (s *service) simulate(op, failureMessage string) error {
	s.sleep(s.delay())
	if s.rand.Float64() < s.cfg.FailureRate {
		s.logger.Debug("injected network failure", zap.String("operation", op))
		return errors.NetworkFailure(failureMessage)
	}
	return nil
}

func (s *service) delay() time.Duration {
	span := s.cfg.MaxDelay - s.cfg.MinDelay
	if span <= 0 {
		return s.cfg.MinDelay
	}
	return s.cfg.MinDelay + time.Duration(s.rand.Float64()*float64(span))
}
