package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravbox/internal/physics"
)

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(bodies []*physics.Body, g float64, step int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(bodies []*physics.Body, step int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(bodies []*physics.Body, step int)

func (f ObserverFunc) OnStep(bodies []*physics.Body, step int) { f(bodies, step) }

type RunConfig struct {
	Dt            float64
	Gravity       float64
	Steps         int
	ValidateState bool
}

type Result struct {
	StepsTaken int
	Metrics    map[string]float64
}

// Runner drives a Simulator without a window, one fixed step at a time.
type Runner struct {
	sim       *Simulator
	metrics   []Metric
	observers []Observer
}

func NewRunner(s *Simulator) *Runner {
	return &Runner{
		sim:       s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run steps w cfg.Steps times. Metrics observe the initial state and every
// state after a step; observers see every state after a step. A cancelled
// context stops the run between steps and the partial result is returned
// with ctx.Err().
func (r *Runner) Run(ctx context.Context, w *World, cfg RunConfig) (*Result, error) {
	if err := validateRunConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{Metrics: make(map[string]float64)}
	for _, m := range r.metrics {
		m.Reset()
		m.Observe(w.Bodies(), cfg.Gravity, 0)
	}

	var runErr error
	for i := 1; i <= cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		r.sim.StepWorld(w, cfg.Gravity, cfg.Dt)
		result.StepsTaken++

		if cfg.ValidateState {
			if idx := firstNonFinite(w.Bodies()); idx >= 0 {
				runErr = &StepError{Step: i, Body: idx, Wrapped: ErrUnstable}
				break
			}
		}

		for _, m := range r.metrics {
			m.Observe(w.Bodies(), cfg.Gravity, i)
		}
		for _, obs := range r.observers {
			obs.OnStep(w.Bodies(), i)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, runErr
}

func validateRunConfig(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidStep, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidStep, cfg.Steps)
	}
	return nil
}

func firstNonFinite(bodies []*physics.Body) int {
	for i, b := range bodies {
		if !b.IsFinite() {
			return i
		}
	}
	return -1
}
