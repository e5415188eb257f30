package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// Euler is the explicit first-order method x += dt·f(x, t). On the projectile
// state (x, y, vx, vy) it updates positions with the velocity from the start
// of the step, so the numeric landing time trails the exact flight time by
// about one step.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	next := make(dynamo.State, len(x))
	axpy(next, x, dyn.Derive(x, t), dt)
	return next
}

// axpy sets dst = x + h·k.
func axpy(dst, x, k dynamo.State, h float64) {
	for i := range x {
		dst[i] = x[i] + h*k[i]
	}
}
