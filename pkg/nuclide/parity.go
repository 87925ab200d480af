package nuclide

// Parity classifies a nucleus by the even/odd-ness of Z and N.
type Parity int

// Parity classes, named Z first then N.
const (
	EvenEven Parity = iota
	EvenOdd
	OddEven
	OddOdd
)

// String returns the hyphenated parity name, e.g. "even-odd".
func (p Parity) String() string {
	switch p {
	case EvenEven:
		return "even-even"
	case EvenOdd:
		return "even-odd"
	case OddEven:
		return "odd-even"
	case OddOdd:
		return "odd-odd"
	default:
		return "unknown"
	}
}

// Parity returns the nuclide's Z/N parity class.
func (n Nuclide) Parity() Parity {
	zEven, nEven := isEven(n.z), isEven(n.n)
	switch {
	case zEven && nEven:
		return EvenEven
	case zEven:
		return EvenOdd
	case nEven:
		return OddEven
	default:
		return OddOdd
	}
}
