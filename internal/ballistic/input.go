package ballistic

import (
	"fmt"
	"math"
)

const (
	DefaultVelocity = 50.0
	DefaultAngle    = 75.0
	DefaultGravity  = 9.8
	DefaultSamples  = 200
)

// Input describes a single launch. Velocity is in m/s, AngleDeg in degrees above
// the horizontal and Gravity in m/s².
type Input struct {
	Velocity float64
	AngleDeg float64
	Gravity  float64
	Samples  int
}

func DefaultInput() Input {
	return Input{
		Velocity: DefaultVelocity,
		AngleDeg: DefaultAngle,
		Gravity:  DefaultGravity,
		Samples:  DefaultSamples,
	}
}

// Validate reports the first out-of-range field. The returned error wraps
// ErrInvalidParameter.
func (in Input) Validate() error {
	if !finite(in.Velocity) || in.Velocity <= 0 {
		return fmt.Errorf("%w: velocity must be positive, got %g", ErrInvalidParameter, in.Velocity)
	}
	if !finite(in.AngleDeg) || in.AngleDeg < 0 || in.AngleDeg > 90 {
		return fmt.Errorf("%w: angle must be within [0, 90] degrees, got %g", ErrInvalidParameter, in.AngleDeg)
	}
	if !finite(in.Gravity) || in.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalidParameter, in.Gravity)
	}
	if in.Samples < 1 {
		return fmt.Errorf("%w: sample count must be at least 1, got %d", ErrInvalidParameter, in.Samples)
	}
	// x, vy·t and ½g·t² are all bounded by 2v²/g over the flight.
	if reach := 2 * in.Velocity * in.Velocity / in.Gravity; !finite(reach) || !finite(2*in.Velocity/in.Gravity) {
		return fmt.Errorf("%w: velocity %g is too large for gravity %g", ErrInvalidParameter, in.Velocity, in.Gravity)
	}
	return nil
}

// Components returns the horizontal and vertical launch velocity.
func (in Input) Components() (vx, vy float64) {
	theta := radians(in.AngleDeg)
	return in.Velocity * math.Cos(theta), in.Velocity * math.Sin(theta)
}

func (in Input) String() string {
	return fmt.Sprintf("v=%.2fm/s angle=%.2f° g=%.2fm/s² n=%d", in.Velocity, in.AngleDeg, in.Gravity, in.Samples)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
