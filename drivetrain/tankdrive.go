package drivetrain

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
)

// TankDrive dispatches per-side commands to a differential drive.
type TankDrive struct {
	logger logging.Logger
	left   SpeedController
	right  SpeedController
}

// NewTankDrive builds a drive from its left and right speed
// controllers. Wrap a side in Inverted when its motors face backwards.
func NewTankDrive(left, right SpeedController, logger logging.Logger) (*TankDrive, error) {
	if left == nil || right == nil {
		return nil, errors.New("need left and right speed controllers for tank drive")
	}
	return &TankDrive{logger: logger, left: left, right: right}, nil
}

func (d *TankDrive) set(ctx context.Context, mode ControlMode, left, right float64) error {
	d.logger.Debugw("drive command", "mode", mode.String(), "left", left, "right", right)
	return multierr.Combine(
		d.left.Set(ctx, mode, left),
		d.right.Set(ctx, mode, right),
	)
}

// SetPercentOutput drives each side open loop, setpoints in -1 to 1.
func (d *TankDrive) SetPercentOutput(ctx context.Context, left, right float64) error {
	return d.set(ctx, PercentOutput, left, right)
}

// SetPosition drives each side to a closed loop position in revolutions.
func (d *TankDrive) SetPosition(ctx context.Context, left, right float64) error {
	return d.set(ctx, Position, left, right)
}

// SetVelocity drives each side at a closed loop velocity in rpm.
func (d *TankDrive) SetVelocity(ctx context.Context, left, right float64) error {
	return d.set(ctx, Velocity, left, right)
}

// Stop zeroes the output on both sides.
func (d *TankDrive) Stop(ctx context.Context) error {
	return d.set(ctx, PercentOutput, 0, 0)
}
