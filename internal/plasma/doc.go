// Package plasma provides closed-form plasma formulary computations.
//
// Every function takes unit-tagged [quantity.Q] inputs, validates
// them against the physical range, and returns a unit-tagged result:
//
//   - [ThermalSpeed]: characteristic particle speed from temperature
//   - [DebyeLength]: electrostatic screening length
//   - [ImpactParameters]: inner/outer Coulomb interaction distances
//   - [CoulombLogarithm]: ln of the impact parameter range
//   - [CollisionFrequency]: single-particle (Lorentz) collision rate
//   - [MaxwellianCollisionFrequency]: near-equilibrium collision rate
//   - [PlasmaFrequency], [Gyrofrequency]: plasma oscillation and
//     cyclotron angular frequencies
//
// # Conventions
//
// Thermal speed defaults to the most probable speed sqrt(2kT/m).
// Collision computations use the reduced mass of the species pair and
// its thermal speed. Plasma and gyro frequencies are angular (rad/s).
package plasma
