// Package drivetrain dispatches drive commands to motor controllers.
package drivetrain

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/components/motor"
)

// ControlMode tags how a setpoint should be interpreted by a speed
// controller.
type ControlMode int

// Supported control modes.
const (
	PercentOutput ControlMode = iota // open loop, setpoint in -1 to 1
	Position                         // closed loop position, revolutions
	Velocity                         // closed loop velocity, rpm
)

func (m ControlMode) String() string {
	switch m {
	case PercentOutput:
		return "percent_output"
	case Position:
		return "position"
	case Velocity:
		return "velocity"
	default:
		return "unknown"
	}
}

// SpeedController dispatches one control mode and setpoint to a motor
// controller.
type SpeedController interface {
	Set(ctx context.Context, mode ControlMode, value float64) error
}

// defaultPositionRPM is the speed used to service Position commands
// when no speed was configured.
const defaultPositionRPM = 60.0

// MotorController adapts a motor component to the SpeedController
// contract.
type MotorController struct {
	motor       motor.Motor
	positionRPM float64
}

// NewMotorController wraps a motor. positionRPM sets the speed used to
// reach Position setpoints; zero or less falls back to a default.
func NewMotorController(m motor.Motor, positionRPM float64) *MotorController {
	if positionRPM <= 0 {
		positionRPM = defaultPositionRPM
	}
	return &MotorController{motor: m, positionRPM: positionRPM}
}

// Set dispatches the setpoint to the wrapped motor.
func (c *MotorController) Set(ctx context.Context, mode ControlMode, value float64) error {
	switch mode {
	case PercentOutput:
		return c.motor.SetPower(ctx, value, nil)
	case Position:
		return c.motor.GoTo(ctx, c.positionRPM, value, nil)
	case Velocity:
		// zero revolutions runs the motor at the given rpm indefinitely
		return c.motor.GoFor(ctx, value, 0, nil)
	default:
		return errors.Errorf("unknown control mode %d", mode)
	}
}

// Group fans one command out to several controllers, the software
// equivalent of a gear box with follower controllers.
type Group []SpeedController

// Set dispatches the setpoint to every controller in the group.
func (g Group) Set(ctx context.Context, mode ControlMode, value float64) error {
	var err error
	for _, controller := range g {
		err = multierr.Append(err, controller.Set(ctx, mode, value))
	}
	return err
}

// Inverted flips the sign of every setpoint, for the side of a drive
// whose motors face the other way.
type Inverted struct {
	SpeedController
}

// Set dispatches the negated setpoint.
func (i Inverted) Set(ctx context.Context, mode ControlMode, value float64) error {
	return i.SpeedController.Set(ctx, mode, -value)
}
