// layer/types.go

package layer

import "fmt"

// Element identifies one drawable asset slot of a clock theme.
type Element uint8

const (
	DropShadow Element = iota
	Face
	Marks
	HourHandShadow
	MinuteHandShadow
	SecondHandShadow
	HourHand
	MinuteHand
	SecondHand
	FaceShadow
	Glass
	Frame

	// Count is the number of elements. It is not an element itself.
	Count
)

// Hand selects which time component drives a dynamic layer's rotation.
type Hand uint8

const (
	NoHand Hand = iota
	HourHandAngle
	MinuteHandAngle
	SecondHandAngle
)

// Info describes a registry entry.
type Info struct {
	Element   Element
	Name      string // for logs
	File      string // file name inside a theme directory
	Mandatory bool
}

func (e Element) String() string {
	if e < Count {
		return registry[e].Name
	}
	return fmt.Sprintf("Element(%d)", uint8(e))
}

// Valid reports whether e names one of the twelve slots.
func (e Element) Valid() bool {
	return e < Count
}
