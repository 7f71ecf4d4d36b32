package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase reports whether every configured dependency is reachable.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	Components() []string
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are ignored, so optional
// dependencies can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Ready runs every checker and joins the failures, each prefixed with the checker name.
func (s *service) Ready(ctx context.Context) error {
	var errs []error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (s *service) Components() []string {
	out := make([]string, len(s.checkers))
	for i, ch := range s.checkers {
		out[i] = ch.Name()
	}
	return out
}
