package nuclide

import (
	"fmt"
	"math"
)

// Pair is an unevaluated (A, Z) input as supplied by a caller or config file.
type Pair struct {
	A int `koanf:"a" json:"a" yaml:"a"`
	Z int `koanf:"z" json:"z" yaml:"z"`
}

// Nuclide is an atomic nucleus identified by its mass number and proton count.
// The zero value is the degenerate A=0 nucleus.
type Nuclide struct {
	a int
	z int
	n int
}

// New returns the nuclide with mass number a and atomic number z.
// No validation is performed; see ErrInvalidNuclide.
func New(a, z int) Nuclide {
	return Nuclide{a: a, z: z, n: a - z}
}

// FromPair is shorthand for New(p.A, p.Z).
func FromPair(p Pair) Nuclide {
	return New(p.A, p.Z)
}

// A returns the mass number (total nucleon count).
func (n Nuclide) A() int { return n.a }

// Z returns the atomic number (proton count).
func (n Nuclide) Z() int { return n.z }

// N returns the neutron count, A - Z.
func (n Nuclide) N() int { return n.n }

// String returns a label such as "U-238".
func (n Nuclide) String() string {
	sym, ok := Symbol(n.z)
	if !ok {
		return fmt.Sprintf("Z%d-%d", n.z, n.a)
	}
	return fmt.Sprintf("%s-%d", sym, n.a)
}

// Symbol returns the chemical symbol of the nuclide's element.
func (n Nuclide) Symbol() string {
	sym, ok := Symbol(n.z)
	if !ok {
		return "?"
	}
	return sym
}

// PairingTerm returns the pairing correction δ in MeV:
// +a_δ·A^(-3/4) for even-even, -a_δ·A^(-3/4) for odd-odd, 0 for odd A.
func (n Nuclide) PairingTerm() (float64, error) {
	if n.a <= 0 {
		return 0, invalidMassNumber(n.a)
	}
	return n.pairing(), nil
}

func (n Nuclide) pairing() float64 {
	switch n.Parity() {
	case EvenEven:
		return PairingCoefficient * math.Pow(float64(n.a), -0.75)
	case OddOdd:
		return -PairingCoefficient * math.Pow(float64(n.a), -0.75)
	default:
		return 0
	}
}

// BindingEnergy returns the total binding energy in MeV from the
// semi-empirical mass formula.
func (n Nuclide) BindingEnergy() (float64, error) {
	if n.a <= 0 {
		return 0, invalidMassNumber(n.a)
	}
	a := float64(n.a)
	z := float64(n.z)
	asym := float64(n.a - 2*n.z)

	e := VolumeCoefficient*a -
		SurfaceCoefficient*math.Pow(a, 2.0/3.0) -
		CoulombCoefficient*z*z/math.Cbrt(a) -
		AsymmetryCoefficient*asym*asym/a +
		n.pairing()
	return e, nil
}

// BindingEnergyPerNucleon returns the binding energy divided by A, in MeV.
func (n Nuclide) BindingEnergyPerNucleon() (float64, error) {
	e, err := n.BindingEnergy()
	if err != nil {
		return 0, err
	}
	return e / float64(n.a), nil
}

// AtomicMass returns the mass of the neutral atom in u: the nuclear mass
// (free nucleons minus binding energy) plus Z electrons.
func (n Nuclide) AtomicMass() (float64, error) {
	perNucleon, err := n.BindingEnergyPerNucleon()
	if err != nil {
		return 0, err
	}
	bind := perNucleon * float64(n.a)
	nucleus := float64(n.z)*ProtonMass + float64(n.n)*NeutronMass - bind/MeVPerAMU
	return nucleus + float64(n.z)*ElectronMass, nil
}

// NuclearRadius returns r0·A^(1/3) in femtometers.
func (n Nuclide) NuclearRadius() float64 {
	return RadiusConstant * math.Cbrt(float64(n.a))
}

// NeutronProtonRatio returns N/Z. ok is false when Z is 0.
func (n Nuclide) NeutronProtonRatio() (ratio float64, ok bool) {
	if n.z == 0 {
		return 0, false
	}
	return float64(n.n) / float64(n.z), true
}

// IsStableToBetaDecay reports whether N/Z lies strictly inside the
// empirical stability band. Nuclei with A, Z or N equal to zero are never
// stable.
func (n Nuclide) IsStableToBetaDecay() bool {
	if n.a == 0 || n.z == 0 || n.n == 0 {
		return false
	}
	ratio := float64(n.n) / float64(n.z)
	return ratio > MinStableRatio && ratio < MaxStableRatio
}

// IsEvenEvenFissionPossible reports whether A, Z and N are all even.
func (n Nuclide) IsEvenEvenFissionPossible() bool {
	return isEven(n.a) && isEven(n.z) && isEven(n.n)
}

func isEven(v int) bool {
	return v%2 == 0
}
