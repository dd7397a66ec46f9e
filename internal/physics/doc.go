// Package physics provides the point-mass model behind the sandbox.
//
// A [Body] carries position, velocity, mass, radius and a bounded [Trail]
// of recent positions. Gravity is pairwise Newtonian with no softening:
//
//   - [Acceleration]: summed pull of every other body on one body
//   - [Body.Advance]: semi-implicit Euler (velocity first, then position)
//   - [Body.Integrate]: both of the above for a single body
//
// Zero-distance pairs contribute nothing, so coincident bodies never
// produce a division by zero. Bodies pass through each other freely.
//
// # Diagnostics
//
// [KineticEnergy], [PotentialEnergy] and [Momentum] summarise a body set
// for monitoring; they are never fed back into the integration.
package physics
