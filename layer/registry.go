// layer/registry.go

package layer

// registry is indexed by Element.
var registry = [Count]Info{
	DropShadow:       {DropShadow, "CLOCK_DROP_SHADOW", "clock-drop-shadow.svg", true},
	Face:             {Face, "CLOCK_FACE", "clock-face.svg", true},
	Marks:            {Marks, "CLOCK_MARKS", "clock-marks.svg", false},
	HourHandShadow:   {HourHandShadow, "CLOCK_HOUR_HAND_SHADOW", "clock-hour-hand-shadow.svg", false},
	MinuteHandShadow: {MinuteHandShadow, "CLOCK_MINUTE_HAND_SHADOW", "clock-minute-hand-shadow.svg", false},
	SecondHandShadow: {SecondHandShadow, "CLOCK_SECOND_HAND_SHADOW", "clock-second-hand-shadow.svg", false},
	HourHand:         {HourHand, "CLOCK_HOUR_HAND", "clock-hour-hand.svg", true},
	MinuteHand:       {MinuteHand, "CLOCK_MINUTE_HAND", "clock-minute-hand.svg", true},
	SecondHand:       {SecondHand, "CLOCK_SECOND_HAND", "clock-second-hand.svg", false},
	FaceShadow:       {FaceShadow, "CLOCK_FACE_SHADOW", "clock-face-shadow.svg", false},
	Glass:            {Glass, "CLOCK_GLASS", "clock-glass.svg", false},
	Frame:            {Frame, "CLOCK_FRAME", "clock-frame.svg", false},
}

// Draw order is significant: later entries paint over earlier ones.
var (
	staticPass = [...]Element{DropShadow, Face, Marks, FaceShadow, Glass, Frame}

	// Each shadow comes before every hand so no shadow lands on a hand.
	dynamicPass = [...]Element{
		HourHandShadow, MinuteHandShadow, SecondHandShadow,
		HourHand, MinuteHand, SecondHand,
	}
)

// Registry returns all entries in Element order.
func Registry() []Info {
	out := make([]Info, len(registry))
	copy(out, registry[:])
	return out
}

// Lookup returns the registry entry for e.
func Lookup(e Element) (Info, bool) {
	if !e.Valid() {
		return Info{}, false
	}
	return registry[e], true
}

// StaticPass returns the layers that depend only on output size, in draw order.
func StaticPass() []Element {
	out := make([]Element, len(staticPass))
	copy(out, staticPass[:])
	return out
}

// DynamicPass returns the hand and hand shadow layers, in draw order.
func DynamicPass() []Element {
	out := make([]Element, len(dynamicPass))
	copy(out, dynamicPass[:])
	return out
}

// IsShadow reports whether e is a hand shadow.
func IsShadow(e Element) bool {
	switch e {
	case HourHandShadow, MinuteHandShadow, SecondHandShadow:
		return true
	}
	return false
}

// IsSeconds reports whether e belongs to the second hand.
func IsSeconds(e Element) bool {
	return e == SecondHand || e == SecondHandShadow
}

// HandOf returns the hand whose angle rotates e, or NoHand for static layers.
func HandOf(e Element) Hand {
	switch e {
	case HourHand, HourHandShadow:
		return HourHandAngle
	case MinuteHand, MinuteHandShadow:
		return MinuteHandAngle
	case SecondHand, SecondHandShadow:
		return SecondHandAngle
	}
	return NoHand
}
