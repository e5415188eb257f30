package dynamo

import (
	"context"
	"errors"
	"math"
	"testing"
)

type decay struct{}

func (d *decay) Derive(x State, t float64) State { return State{-x[0]} }
func (d *decay) StateDim() int                   { return 1 }

type blowup struct{}

func (b *blowup) Derive(x State, t float64) State { return State{math.Inf(1)} }
func (b *blowup) StateDim() int                   { return 1 }

type euler struct{}

func (e *euler) Step(dyn System, x State, t float64, dt float64) State {
	dx := dyn.Derive(x, t)
	return State{x[0] + dt*dx[0]}
}

func TestSimulatorRun(t *testing.T) {
	result, err := New(&decay{}, &euler{}).Run(context.Background(), State{1.0}, Config{Dt: 0.25, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 5 || len(result.Times) != 5 {
		t.Errorf("expected 5 states and times, got %d and %d", len(result.States), len(result.Times))
	}
	if result.StepsTaken != 4 {
		t.Errorf("expected 4 steps, got %d", result.StepsTaken)
	}

	x, tEnd := result.Last()
	if tEnd != 1.0 {
		t.Errorf("expected final time 1.0, got %f", tEnd)
	}
	if want := math.Pow(0.75, 4); math.Abs(x[0]-want) > 1e-12 {
		t.Errorf("expected final state %.6f, got %.6f", want, x[0])
	}
	if result.Stopped {
		t.Error("run should not report a stop")
	}
}

func TestSimulatorStopWhen(t *testing.T) {
	cfg := Config{
		Dt:       0.1,
		Duration: 10,
		StopWhen: func(x State) bool { return x[0] < 0.5 },
	}
	result, err := New(&decay{}, &euler{}).Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Stopped {
		t.Fatal("expected run to stop early")
	}
	x, _ := result.Last()
	if x[0] >= 0.5 {
		t.Errorf("last state %f should satisfy the stop condition", x[0])
	}
	prev := result.States[len(result.States)-2]
	if prev[0] < 0.5 {
		t.Errorf("run continued past the first stopping state")
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1}},
		{"negative dt", Config{Dt: -0.1, Duration: 1}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&decay{}, &euler{}).Run(context.Background(), State{1}, tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	_, err := New(&decay{}, &euler{}).Run(context.Background(), State{1, 2}, DefaultConfig())
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSimulatorInvalidState(t *testing.T) {
	cfg := Config{Dt: 0.1, Duration: 1, ValidateState: true}
	result, err := New(&blowup{}, &euler{}).Run(context.Background(), State{1}, cfg)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	var simErr SimError
	if !errors.As(err, &simErr) || simErr.Step != 0 {
		t.Errorf("expected SimError at step 0, got %v", err)
	}
	if len(result.States) != 1 {
		t.Errorf("expected only the initial state, got %d", len(result.States))
	}
}

func TestSimulatorCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(&decay{}, &euler{}).Run(ctx, State{1}, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.StepsTaken != 0 {
		t.Errorf("expected partial result with no steps, got %+v", result)
	}
}

func TestStateHelpers(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}

	a := State{1, 2}
	c := a.Clone()
	c[0] = 9
	if a[0] != 1 {
		t.Error("Clone shares storage")
	}
}
