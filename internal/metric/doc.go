// Package metric defines the two wormhole spacetime models under study.
//
//   - [MorrisThorne]: the Morris-Thorne traversable wormhole, composed of a
//     shape function b(l) and redshift function Φ(l) drawn from a registry of
//     named families
//   - [ThinShell]: the Visser cut-and-paste wormhole, two Schwarzschild
//     exteriors glued at a shell radius with Israel junction surface stress
//
// Entities are immutable values; construction validates the physical
// parameter invariants ([ErrInvalidParameter]) and family names
// ([ErrUnknownFamily]). Everything downstream (the Einstein stress-energy
// solver, the throat diagnostics and the ANEC integrators) consumes these
// models through pure per-sample evaluations.
package metric
