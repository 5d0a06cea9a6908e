package spartanutils

/*
	servomath.go: Shared hobby servo pulse width conversions. A standard
	servo maps its full travel onto 500us to 2500us pulses.
*/

// AngleToPulseWidth changes the input angle in degrees
// into the corresponding pulsewidth value in microsecond.
func AngleToPulseWidth(angle, maxRotation int) int {
	pulseWidth := 500 + (2000 * angle / maxRotation)
	return pulseWidth
}

// PulseWidthToAngle changes the pulsewidth value in microsecond
// to the corresponding angle in degrees.
func PulseWidthToAngle(pulseWidth, maxRotation int) int {
	angle := maxRotation * (pulseWidth + 1 - 500) / 2000
	return angle
}
