// Package cameramount implements a servo driven pan/tilt camera mount.
package cameramount

/*
	The mount lets callers aim a camera in one consistent angular frame:
	0 degrees increasing toward 180 always means the same physical
	direction, no matter which way a servo happens to be installed. An
	axis flagged as reversed flips commands before they reach the servo,
	and travel limits keep the mount from driving into its own hardware.
*/

import (
	"context"
	"math"

	"go.viam.com/rdk/components/servo"
)

// fullTravelDeg is the travel of a standard hobby servo. Reversed axes
// mirror their commands and limits about this range.
const fullTravelDeg = 180

// Actuator is the slice of a positional servo an axis drives. Any
// go.viam.com/rdk servo satisfies it.
type Actuator interface {
	Move(ctx context.Context, angleDeg uint32, extra map[string]interface{}) error
}

var _ Actuator = (servo.Servo)(nil)

// An Axis commands one rotation axis of the mount within fixed travel
// limits. Limits are normalized once at construction so lower <= upper
// always holds, even for reversed axes.
type Axis struct {
	actuator Actuator
	lower    int
	upper    int
	reversed bool
	angle    float64
}

// NewAxis builds an axis around an actuator. Limits are given in the
// caller's frame; a reversed axis mirrors them onto the servo's frame.
func NewAxis(actuator Actuator, lowerLimitDeg, upperLimitDeg int, reversed bool) *Axis {
	lower, upper := lowerLimitDeg, upperLimitDeg
	if reversed {
		lower = fullTravelDeg - upperLimitDeg
		upper = fullTravelDeg - lowerLimitDeg
	}
	return &Axis{
		actuator: actuator,
		lower:    lower,
		upper:    upper,
		reversed: reversed,
	}
}

// CommandAngle moves the axis toward the requested angle, clamped to
// the travel limits, and returns the integer angle written to the
// actuator. Servo positions are set from integers, so the request is
// rounded (ties away from zero) before clamping. Within the limits the
// unrounded request is recorded as the last angle; at a limit the
// integer limit itself is recorded.
func (a *Axis) CommandAngle(ctx context.Context, angleDeg float64) (int, error) {
	if a.reversed {
		angleDeg = fullTravelDeg - angleDeg
	}
	rounded := int(math.Round(angleDeg))

	var command int
	switch {
	case rounded >= a.upper:
		command = a.upper
		a.angle = float64(a.upper)
	case rounded <= a.lower:
		command = a.lower
		a.angle = float64(a.lower)
	default:
		command = rounded
		a.angle = angleDeg
	}
	return command, a.actuator.Move(ctx, uint32(command), nil)
}

// Angle returns the last commanded angle. Within the limits this keeps
// fractional precision the hardware never saw.
func (a *Axis) Angle() float64 {
	return a.angle
}

// RoundedAngle returns the last commanded angle rounded to the nearest
// degree.
func (a *Axis) RoundedAngle() int {
	return int(math.Round(a.angle))
}

// AtLimit reports whether the last command landed on a travel limit.
func (a *Axis) AtLimit() bool {
	rounded := a.RoundedAngle()
	return rounded == a.lower || rounded == a.upper
}

// Bounds returns the normalized travel limits in degrees.
func (a *Axis) Bounds() (lower, upper int) {
	return a.lower, a.upper
}
