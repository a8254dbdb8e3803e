package clock

import (
	"math"
	"time"

	"github.com/waozixyz/clok/layer"
)

// Angles holds hand positions in degrees, clockwise from twelve o'clock.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AnglesAt computes the hand angles for t in t's location. Seconds keep
// their sub-second fraction so the hands sweep.
func AnglesAt(t time.Time) Angles {
	hour := t.Hour()
	minute := float64(t.Minute())
	second := float64(t.Second()) + float64(t.Nanosecond())/1e9

	return Angles{
		Hour:   float64(hour%12)*30 + minute*0.5 + second*(0.5/60),
		Minute: minute*6 + second*0.1,
		Second: second * 6,
	}
}

// For returns the angle in radians that rotates a layer driven by h.
func (a Angles) For(h layer.Hand) float64 {
	switch h {
	case layer.HourHandAngle:
		return radians(a.Hour)
	case layer.MinuteHandAngle:
		return radians(a.Minute)
	case layer.SecondHandAngle:
		return radians(a.Second)
	}
	return 0
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
