// Package gpioservo implements a gpio servo
package gpioservo

/*
	This driver contains various functionalities of a hobby servo driven
	through a PWM capable GPIO pin of any board component. The servo pin
	overrides the board's default pin configuration, including PWM
	frequency and width.
*/

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/utils"

	"go.viam.com/rdk/components/board"
	"go.viam.com/rdk/components/servo"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/operation"
	"go.viam.com/rdk/resource"

	spartanutils "github.com/chuckb/SpartanLib/utils"
)

// Model is the model for a servo on a PWM capable GPIO pin.
var Model = spartanutils.Family.WithModel("gpio-servo")

var (
	holdTime                = 250 * time.Millisecond // time before a release is sent
	servoDefaultMaxRotation = 180
	servoDefaultFreqHz      = uint(50)
	servoDefaultStartPos    = 90.0
)

// init registers a board backed gpio servo.
func init() {
	resource.RegisterComponent(
		servo.API,
		Model,
		resource.Registration[servo.Servo, *Config]{
			Constructor: newGPIOServo,
		},
	)
}

func newGPIOServo(
	ctx context.Context,
	deps resource.Dependencies,
	conf resource.Config,
	logger logging.Logger,
) (servo.Servo, error) {
	newConf, err := resource.NativeConfig[*Config](conf)
	if err != nil {
		return nil, err
	}
	if newConf.Pin == "" {
		return nil, errors.New("need pin for gpio servo")
	}

	b, err := board.FromDependencies(deps, newConf.BoardName)
	if err != nil {
		return nil, errors.Wrap(err, "gpio servo needs a board")
	}
	pin, err := b.GPIOPinByName(newConf.Pin)
	if err != nil {
		return nil, err
	}

	theServo := &gpioServo{
		Named:   conf.ResourceName().AsNamed(),
		logger:  logger,
		pin:     pin,
		pinName: newConf.Pin,
		opMgr:   operation.NewSingleOperationManager(),
	}
	if err := theServo.validateAndSetConfiguration(newConf); err != nil {
		return nil, err
	}

	if err := setInitialPosition(ctx, theServo, newConf); err != nil {
		return nil, err
	}
	if err := handleHoldPosition(ctx, theServo, newConf); err != nil {
		return nil, err
	}

	return theServo, nil
}

// gpioServo implements a servo.Servo using a board's PWM pin.
type gpioServo struct {
	resource.Named
	resource.AlwaysRebuild
	logger    logging.Logger
	pin       board.GPIOPin
	pinName   string
	min, max  uint32
	pwmFreqHz uint

	maxRotation uint32
	holdPos     bool
	opMgr       *operation.SingleOperationManager

	mu    sync.Mutex
	angle uint32 // last commanded angle in degrees
}

// Validate and set gpioServo fields based on the configuration.
func (s *gpioServo) validateAndSetConfiguration(conf *Config) error {
	if conf.Min > 0 {
		s.min = uint32(conf.Min)
	}

	// Set to 180 if not set
	s.max = 180
	if conf.Max > 0 {
		s.max = uint32(conf.Max)
	}
	s.maxRotation = uint32(conf.MaxRotation)
	if s.maxRotation == 0 {
		s.maxRotation = uint32(servoDefaultMaxRotation)
	}
	if s.maxRotation < s.min {
		return errors.New("maxRotation is less than minimum")
	}
	if s.maxRotation < s.max {
		return errors.New("maxRotation is less than maximum")
	}

	s.pwmFreqHz = servoDefaultFreqHz
	if conf.Freq > 0 {
		s.pwmFreqHz = conf.Freq
	}

	return nil
}

// setInitialPosition moves the servo to the configured starting position.
func setInitialPosition(ctx context.Context, s *gpioServo, conf *Config) error {
	startPos := servoDefaultStartPos
	if conf.StartPos != nil {
		startPos = *conf.StartPos
	}
	pulseWidth := spartanutils.AngleToPulseWidth(int(startPos), int(s.maxRotation))
	if err := s.setServoPulseWidth(ctx, pulseWidth); err != nil {
		return errors.Wrap(err, "couldn't set initial servo position")
	}
	s.angle = uint32(startPos)
	return nil
}

// handleHoldPosition configures the hold position setting for the servo.
func handleHoldPosition(ctx context.Context, s *gpioServo, conf *Config) error {
	if conf.HoldPos == nil || *conf.HoldPos {
		// Hold the servo position
		s.holdPos = true
		return nil
	}
	// Release the servo position and disable the servo
	s.holdPos = false
	return s.setServoPulseWidth(ctx, 0)
}

// setServoPulseWidth programs the pin for one pulse width in microseconds.
// A zero pulse width releases the servo.
func (s *gpioServo) setServoPulseWidth(ctx context.Context, pulseWidthUs int) error {
	if err := s.pin.SetPWMFreq(ctx, s.pwmFreqHz, nil); err != nil {
		return errors.Wrapf(err, "servo on pin %s failed to set pwm frequency", s.pinName)
	}
	periodUs := 1e6 / float64(s.pwmFreqHz)
	if err := s.pin.SetPWM(ctx, float64(pulseWidthUs)/periodUs, nil); err != nil {
		return errors.Wrapf(err, "servo on pin %s failed to set pwm duty cycle", s.pinName)
	}
	return nil
}

// Move moves the servo to the given angle (0-180 degrees)
// This will block until done or a new operation cancels this one
func (s *gpioServo) Move(ctx context.Context, angleDeg uint32, extra map[string]interface{}) error {
	ctx, done := s.opMgr.New(ctx)
	defer done()

	if s.min > 0 && angleDeg < s.min {
		angleDeg = s.min
	}
	if s.max > 0 && angleDeg > s.max {
		angleDeg = s.max
	}
	pulseWidth := spartanutils.AngleToPulseWidth(int(angleDeg), int(s.maxRotation))
	if err := s.setServoPulseWidth(ctx, pulseWidth); err != nil {
		return err
	}

	s.mu.Lock()
	s.angle = angleDeg
	s.mu.Unlock()

	// duration of the pulse width sent on the pin while the servo moves
	utils.SelectContextOrWait(ctx, time.Duration(pulseWidth)*time.Microsecond)

	if !s.holdPos { // release the servo once it has reached its position
		if !utils.SelectContextOrWait(ctx, holdTime) {
			return ctx.Err()
		}
		return s.setServoPulseWidth(ctx, 0)
	}
	return nil
}

// Position returns the current set angle (degrees) of the servo.
func (s *gpioServo) Position(ctx context.Context, extra map[string]interface{}) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.angle, nil
}

// Stop stops the servo. It is assumed the servo stops immediately.
func (s *gpioServo) Stop(ctx context.Context, extra map[string]interface{}) error {
	_, done := s.opMgr.New(ctx)
	defer done()
	return s.setServoPulseWidth(ctx, 0)
}

// IsMoving returns whether the servo is still servicing a Move.
func (s *gpioServo) IsMoving(ctx context.Context) (bool, error) {
	return s.opMgr.OpRunning(), nil
}

// Close releases the servo so it stops drawing holding current.
func (s *gpioServo) Close(ctx context.Context) error {
	return s.setServoPulseWidth(ctx, 0)
}
