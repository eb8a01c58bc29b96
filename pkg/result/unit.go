package result

// Unit is the payload type for operations that produce no meaningful value.
// All Unit values are equal.
type Unit struct{}

// UnitValue is the canonical Unit instance.
var UnitValue = Unit{}

func (Unit) String() string {
	return "()"
}
