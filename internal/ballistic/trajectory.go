package ballistic

import "fmt"

// Sample is the projectile position at time T. Units are seconds and metres.
type Sample struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trajectory is the sampled flight of one launch. It is read-only once built.
type Trajectory struct {
	input      Input
	vx, vy     float64
	flightTime float64
	samples    []Sample
}

// Simulate samples a launch with DefaultSamples points.
func Simulate(velocity, angleDeg, gravity float64) (*Trajectory, error) {
	return SimulateInput(Input{
		Velocity: velocity,
		AngleDeg: angleDeg,
		Gravity:  gravity,
		Samples:  DefaultSamples,
	})
}

// SimulateInput samples in.Samples equally spaced times over [0, flight time].
func SimulateInput(in Input) (*Trajectory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vx, vy := in.Components()
	g := in.Gravity

	tFlight := 0.0
	if vy > 0 {
		tFlight = 2 * vy / g
	}

	n := in.Samples
	samples := make([]Sample, n)
	for i := range samples {
		t := sampleTime(i, n, tFlight)
		y := vy*t - 0.5*g*t*t
		if y < 0 {
			y = 0
		}
		s := Sample{T: t, X: vx * t, Y: y}
		if !finite(s.T) || !finite(s.X) || !finite(s.Y) {
			return nil, fmt.Errorf("%w: sample %d is not finite", ErrInvalidParameter, i)
		}
		samples[i] = s
	}

	return &Trajectory{
		input:      in,
		vx:         vx,
		vy:         vy,
		flightTime: tFlight,
		samples:    samples,
	}, nil
}

// sampleTime pins the last sample to tFlight so rounding never extends the range.
func sampleTime(i, n int, tFlight float64) float64 {
	if n == 1 || i == 0 {
		return 0
	}
	if i == n-1 {
		return tFlight
	}
	return tFlight * float64(i) / float64(n-1)
}

func (t *Trajectory) Input() Input        { return t.input }
func (t *Trajectory) Len() int            { return len(t.samples) }
func (t *Trajectory) FlightTime() float64 { return t.flightTime }

// Velocity returns the launch velocity components.
func (t *Trajectory) Velocity() (vx, vy float64) { return t.vx, t.vy }

// At returns sample i. It panics when i is out of range, like a slice index.
func (t *Trajectory) At(i int) Sample { return t.samples[i] }

// Samples returns a copy of all samples.
func (t *Trajectory) Samples() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

// Final returns the last sample.
func (t *Trajectory) Final() Sample { return t.samples[len(t.samples)-1] }

// Apex returns the sample with the greatest height. Ties resolve to the earliest.
func (t *Trajectory) Apex() Sample {
	best := t.samples[0]
	for _, s := range t.samples[1:] {
		if s.Y > best.Y {
			best = s
		}
	}
	return best
}

// Bounds returns the maximum x and y reached by the samples.
func (t *Trajectory) Bounds() (maxX, maxY float64) {
	for _, s := range t.samples {
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return maxX, maxY
}
