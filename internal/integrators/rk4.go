package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta method. Under constant
// gravity the projectile's position is quadratic in t, which RK4 reproduces
// exactly up to rounding. Stage buffers are reused between steps.
type RK4 struct {
	k     [4]dynamo.State
	stage dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.stage) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.stage = make(dynamo.State, n)
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	r.resize(len(x))
	half := 0.5 * dt

	copy(r.k[0], dyn.Derive(x, t))
	axpy(r.stage, x, r.k[0], half)
	copy(r.k[1], dyn.Derive(r.stage, t+half))
	axpy(r.stage, x, r.k[1], half)
	copy(r.k[2], dyn.Derive(r.stage, t+half))
	axpy(r.stage, x, r.k[2], dt)
	copy(r.k[3], dyn.Derive(r.stage, t+dt))

	next := make(dynamo.State, len(x))
	w := dt / 6
	for i := range x {
		next[i] = x[i] + w*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return next
}
