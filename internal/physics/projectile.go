package physics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// Projectile is a point mass under uniform gravity with no drag.
// State layout: (x, y, vx, vy).
type Projectile struct {
	Gravity float64
}

func NewProjectile(gravity float64) *Projectile {
	return &Projectile{Gravity: gravity}
}

func (p *Projectile) StateDim() int {
	return 4
}

func (p *Projectile) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[2], x[3], 0, -p.Gravity}
}

// Energy returns kinetic plus potential energy per unit mass.
func (p *Projectile) Energy(x dynamo.State) float64 {
	return 0.5*(x[2]*x[2]+x[3]*x[3]) + p.Gravity*x[1]
}

// InitialState launches from the origin at speed v and angleDeg above horizontal.
func (p *Projectile) InitialState(v, angleDeg float64) dynamo.State {
	theta := angleDeg * math.Pi / 180
	return dynamo.State{0, 0, v * math.Cos(theta), v * math.Sin(theta)}
}

// HitGround reports a state that has dropped below launch height while falling.
func HitGround(x dynamo.State) bool {
	return x[1] < 0 && x[3] < 0
}

// Landing interpolates the ground crossing between the last two recorded
// states of a run stopped by HitGround.
func Landing(r *dynamo.Result) (t, x float64, ok bool) {
	n := len(r.States)
	if !r.Stopped || n < 2 {
		return 0, 0, false
	}
	prev, cur := r.States[n-2], r.States[n-1]
	t0, t1 := r.Times[n-2], r.Times[n-1]

	frac := 1.0
	if dy := prev[1] - cur[1]; dy != 0 {
		frac = prev[1] / dy
	}
	return t0 + frac*(t1-t0), prev[0] + frac*(cur[0]-prev[0]), true
}

// Apex returns the highest recorded state and its time.
func Apex(r *dynamo.Result) (dynamo.State, float64) {
	best := 0
	for i, s := range r.States {
		if s[1] > r.States[best][1] {
			best = i
		}
	}
	return r.States[best], r.Times[best]
}
