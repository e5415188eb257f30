// Package ballistic computes drag-free projectile trajectories in closed form.
//
// A launch is described by an [Input] (initial speed, launch angle in degrees,
// gravity and sample count). [Simulate] turns it into an immutable [Trajectory]
// of equally spaced [Sample] values covering the whole flight:
//
//   - t runs from 0 to the analytic flight time, both endpoints included
//   - x(t) = vx·t
//   - y(t) = vy·t − ½·g·t², clamped at 0
//
// # Example
//
//	traj, err := ballistic.Simulate(50, 75, ballistic.DefaultGravity)
//	if err != nil {
//	    return err
//	}
//	for i := 0; i < traj.Len(); i++ {
//	    s := traj.At(i)
//	    fmt.Println(s.T, s.X, s.Y)
//	}
//
// # Thread Safety
//
// The package holds no state. A [Trajectory] is never mutated after [Simulate]
// returns, so it can be read from any goroutine.
package ballistic
