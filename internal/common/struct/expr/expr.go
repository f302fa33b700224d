// Released under an MIT license. See LICENSE.

// Package expr provides the structured form of a value handed to an
// external formatter. A node is either a plain value token or the
// quotient of two other nodes.
package expr

// T (expr) is a node in the expression produced for a value.
type T struct {
	den   *T
	num   *T
	value string
}

type expr = T

// Div creates a new quotient node with the numerator num and the
// denominator den.
func Div(num, den *T) *expr {
	return &expr{num: num, den: den}
}

// Value creates a new value token with the text s.
func Value(s string) *expr {
	return &expr{value: s}
}

// Den returns the denominator of a quotient node, or nil.
func (n *expr) Den() *T {
	return n.den
}

// IsDiv returns true if the node n is a quotient node.
func (n *expr) IsDiv() bool {
	return n.num != nil
}

// Num returns the numerator of a quotient node, or nil.
func (n *expr) Num() *T {
	return n.num
}

// String returns the text of the node n. Useful for debugging and for
// formatters that do not need the structure.
func (n *expr) String() string {
	if n.IsDiv() {
		return n.num.String() + "/" + n.den.String()
	}

	return n.value
}

// Value returns the text of a value token.
func (n *expr) Value() string {
	return n.value
}
