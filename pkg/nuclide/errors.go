package nuclide

import (
	"errors"
	"fmt"
)

// ErrInvalidNuclide is returned when a quantity is requested for a nuclide
// whose mass number is not positive.
var ErrInvalidNuclide = errors.New("invalid nuclide")

func invalidMassNumber(a int) error {
	return fmt.Errorf("%w: mass number must be positive, got A=%d", ErrInvalidNuclide, a)
}
