// Package physics provides the projectile model used for numerical checks.
//
// [Projectile] implements [dynamo.System] with state (x, y, vx, vy) and
// [dynamo.Hamiltonian] so energy drift can be reported. [HitGround] is the
// stop condition for a launch that returns to its starting height, and
// [Landing] recovers the crossing time between the last two steps.
package physics
