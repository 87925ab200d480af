// Package nuclide evaluates semi-empirical properties of atomic nuclei.
//
// A Nuclide is an immutable (A, Z) pair with its derived neutron count N.
// Its methods are pure functions over those three integers:
//   - binding energy (total and per nucleon) from the Weizsäcker formula
//   - atomic mass in unified atomic mass units
//   - nuclear radius from R = r0·A^(1/3)
//   - a neutron/proton ratio band for beta-decay stability
//   - even-even parity as a proxy for fission feasibility
//
// The only failure mode is a non-positive mass number, reported as
// ErrInvalidNuclide. Every other input, including Z > A or Z < 0, is
// accepted and evaluated as-is.
package nuclide
