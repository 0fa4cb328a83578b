package operation

import "fmt"

type Kind int

const (
	Get Kind = iota
	Set
	Inc
	Dec
)

func (k Kind) String() string {
	switch k {
	case Get:
		return "get"
	case Set:
		return "set"
	case Inc:
		return "inc"
	case Dec:
		return "dec"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation is one parsed brightness request. Value is the absolute
// percentage for Set and the delta in percentage points for Inc and Dec.
type Operation struct {
	Kind  Kind
	Value float64
}
