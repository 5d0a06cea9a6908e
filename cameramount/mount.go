package cameramount

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
)

// CameraMount aims a camera with a pan servo and a tilt servo.
type CameraMount struct {
	logger logging.Logger
	pan    *Axis
	tilt   *Axis
}

// NewCameraMount builds a mount from its two actuators. Limit pairs
// left at zero in the config default to the full 0 to 180 travel.
func NewCameraMount(pan, tilt Actuator, conf *Config, logger logging.Logger) (*CameraMount, error) {
	if pan == nil || tilt == nil {
		return nil, errors.New("need pan and tilt actuators for camera mount")
	}
	if conf == nil {
		conf = &Config{}
	}
	if _, _, err := conf.Validate(""); err != nil {
		return nil, err
	}

	panLower, panUpper := conf.PanLowerLimitDeg, conf.PanUpperLimitDeg
	if panLower == 0 && panUpper == 0 {
		panUpper = fullTravelDeg
	}
	tiltLower, tiltUpper := conf.TiltLowerLimitDeg, conf.TiltUpperLimitDeg
	if tiltLower == 0 && tiltUpper == 0 {
		tiltUpper = fullTravelDeg
	}

	return &CameraMount{
		logger: logger,
		pan:    NewAxis(pan, panLower, panUpper, conf.ReversePan),
		tilt:   NewAxis(tilt, tiltLower, tiltUpper, conf.ReverseTilt),
	}, nil
}

// PanTo pans to an angle within the limits set at construction time.
func (m *CameraMount) PanTo(ctx context.Context, angleDeg float64) error {
	command, err := m.pan.CommandAngle(ctx, angleDeg)
	m.logger.Debugw("pan command", "requested_deg", angleDeg, "commanded_deg", command)
	return err
}

// TiltTo tilts to an angle within the limits set at construction time.
func (m *CameraMount) TiltTo(ctx context.Context, angleDeg float64) error {
	command, err := m.tilt.CommandAngle(ctx, angleDeg)
	m.logger.Debugw("tilt command", "requested_deg", angleDeg, "commanded_deg", command)
	return err
}

// PointAt commands both axes together.
func (m *CameraMount) PointAt(ctx context.Context, panDeg, tiltDeg float64) error {
	return multierr.Combine(m.PanTo(ctx, panDeg), m.TiltTo(ctx, tiltDeg))
}

// PanAngle returns the last commanded pan angle.
func (m *CameraMount) PanAngle() float64 {
	return m.pan.Angle()
}

// TiltAngle returns the last commanded tilt angle.
func (m *CameraMount) TiltAngle() float64 {
	return m.tilt.Angle()
}

// RoundedPanAngle returns the last commanded pan angle rounded to the
// nearest degree.
func (m *CameraMount) RoundedPanAngle() int {
	return m.pan.RoundedAngle()
}

// RoundedTiltAngle returns the last commanded tilt angle rounded to the
// nearest degree.
func (m *CameraMount) RoundedTiltAngle() int {
	return m.tilt.RoundedAngle()
}

// AtPanLimit reports whether panning is at a limit.
func (m *CameraMount) AtPanLimit() bool {
	return m.pan.AtLimit()
}

// AtTiltLimit reports whether tilting is at a limit.
func (m *CameraMount) AtTiltLimit() bool {
	return m.tilt.AtLimit()
}
