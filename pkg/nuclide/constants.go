package nuclide

// Semi-empirical mass formula coefficients, in MeV.
const (
	VolumeCoefficient    = 15.56
	SurfaceCoefficient   = 17.23
	CoulombCoefficient   = 0.7
	AsymmetryCoefficient = 23.285
	PairingCoefficient   = 12.0
)

// Particle masses in unified atomic mass units (u).
const (
	ProtonMass   = 1.007276
	NeutronMass  = 1.008665
	ElectronMass = 0.0005486
)

// MeVPerAMU converts an energy in MeV to a mass in u.
const MeVPerAMU = 931.5

// RadiusConstant is r0 in R = r0·A^(1/3), in femtometers.
const RadiusConstant = 1.2

// Bounds of the neutron/proton ratio band treated as beta-stable.
// Both bounds are exclusive.
const (
	MinStableRatio = 1.0
	MaxStableRatio = 1.6
)
