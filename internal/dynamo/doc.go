// Package dynamo provides fixed-step numerical integration of ODE systems.
//
// The package defines the primitives used to cross-check closed-form results
// against a numerical solution:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: single-step numerical integrator
//   - [Simulator]: runs a system until a duration elapses or a stop condition holds
//
// # Example
//
//	dyn := physics.NewProjectile(9.8)
//	sim := dynamo.New(dyn, integrators.NewRK4())
//	cfg := dynamo.DefaultConfig()
//	cfg.StopWhen = physics.HitGround
//	result, _ := sim.Run(ctx, dyn.InitialState(50, 75), cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe; integrators keep scratch buffers.
package dynamo
