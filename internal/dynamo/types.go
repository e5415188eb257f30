package dynamo

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an autonomous or time-dependent ODE dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

type Config struct {
	Dt       float64
	Duration float64
	// StopWhen ends the run after the first step whose state satisfies it.
	StopWhen      func(x State) bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.001,
		Duration:      60.0,
		ValidateState: true,
	}
}

type Result struct {
	States      []State
	Times       []float64
	EnergyDrift float64
	StepsTaken  int
	Stopped     bool
}

// Last returns the final recorded state and time.
func (r *Result) Last() (State, float64) {
	n := len(r.States)
	return r.States[n-1], r.Times[n-1]
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

func (e SimError) Unwrap() error {
	return ErrInvalidState
}
