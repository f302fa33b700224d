// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to calculator functions.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
)

// Fixed returns an error unless between min and max arguments were
// passed.
func Fixed(actual []element.I, min, max int) error {
	n := len(actual)

	if n < min {
		return fmt.Errorf("expected %s, passed %d", Count(min, "argument", "s"), n)
	}

	if n > max {
		return fmt.Errorf("expected %s, passed %d", Count(max, "argument", "s"), n)
	}

	return nil
}

// Count formats n with the label, pluralized if required.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
