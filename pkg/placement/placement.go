package placement

import (
	"cmp"
	"strings"

	"github.com/arthur-debert/dashtabs/pkg/errors"
)

// Placement is one of the ordinal buckets a tab can be placed in
type Placement string

const (
	Beginning Placement = "beginning"
	Middle    Placement = "middle"
	End       Placement = "end"
)

// Default is the bucket used when a tab is registered without a placement
const Default = Middle

// If needed, buckets such as "first_half" can be inserted between these.
var ordered = []Placement{
	Beginning,
	Middle,
	End,
}

// Placed is anything that reports a placement, typically a registered tab.
type Placed interface {
	Placement() Placement
}

// All returns the buckets in ascending order
func All() []Placement {
	out := make([]Placement, len(ordered))
	copy(out, ordered)
	return out
}

// Ordinal returns the sort key of p. The empty placement sorts as Default;
// unknown values sort after End.
func Ordinal(p Placement) int {
	if p == "" {
		p = Default
	}
	for i, candidate := range ordered {
		if candidate == p {
			return i
		}
	}
	return len(ordered)
}

// Compare orders two tabs by the ordinal of their placement buckets.
// Tabs in the same bucket compare equal.
func Compare(a, b Placed) int {
	return cmp.Compare(Ordinal(a.Placement()), Ordinal(b.Placement()))
}

// Valid reports whether p is one of the known buckets
func (p Placement) Valid() bool {
	return Ordinal(p) < len(ordered) && p != ""
}

func (p Placement) String() string {
	return string(p)
}

// Parse converts a name into a Placement. The empty string yields Default.
func Parse(s string) (Placement, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Default, nil
	}
	p := Placement(name)
	if !p.Valid() {
		return "", errors.Newf(errors.ErrInvalidPlacement, "unknown placement %q", s).
			WithDetail("placement", s)
	}
	return p, nil
}

// Order is the placement namespace. It holds no state and cannot be
// constructed; use the package-level constants and Compare instead.
type Order struct {
	_ struct{}
}

// NewOrder always fails with ErrUnsupportedOperation.
func NewOrder() (*Order, error) {
	return nil, errors.New(errors.ErrUnsupportedOperation,
		"placement order is a namespace and cannot be instantiated")
}
