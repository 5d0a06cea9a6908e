package cameramount

import (
	"context"
	"testing"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

func TestNewCameraMount(t *testing.T) {
	logger := logging.NewTestLogger(t)

	t.Run("missing actuators", func(t *testing.T) {
		_, err := NewCameraMount(nil, &fakeActuator{}, &Config{}, logger)
		test.That(t, err.Error(), test.ShouldContainSubstring, "need pan and tilt actuators")

		_, err = NewCameraMount(&fakeActuator{}, nil, &Config{}, logger)
		test.That(t, err.Error(), test.ShouldContainSubstring, "need pan and tilt actuators")
	})

	t.Run("inverted limits are rejected", func(t *testing.T) {
		_, err := NewCameraMount(&fakeActuator{}, &fakeActuator{}, &Config{
			PanLowerLimitDeg: 150,
			PanUpperLimitDeg: 30,
		}, logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "upper limit 30 is less than lower limit 150")
	})

	t.Run("limits outside servo travel are rejected", func(t *testing.T) {
		_, err := NewCameraMount(&fakeActuator{}, &fakeActuator{}, &Config{
			TiltLowerLimitDeg: 10,
			TiltUpperLimitDeg: 200,
		}, logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "outside servo travel")
	})

	t.Run("zero limits default to full travel", func(t *testing.T) {
		mount, err := NewCameraMount(&fakeActuator{}, &fakeActuator{}, &Config{}, logger)
		test.That(t, err, test.ShouldBeNil)

		lower, upper := mount.pan.Bounds()
		test.That(t, lower, test.ShouldEqual, 0)
		test.That(t, upper, test.ShouldEqual, 180)
		lower, upper = mount.tilt.Bounds()
		test.That(t, lower, test.ShouldEqual, 0)
		test.That(t, upper, test.ShouldEqual, 180)
	})
}

func TestCameraMountCommands(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(t)

	pan := &fakeActuator{}
	tilt := &fakeActuator{}
	mount, err := NewCameraMount(pan, tilt, &Config{
		PanLowerLimitDeg:  30,
		PanUpperLimitDeg:  150,
		TiltLowerLimitDeg: 45,
		TiltUpperLimitDeg: 135,
		ReverseTilt:       true,
	}, logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, mount.PanTo(ctx, 90.2), test.ShouldBeNil)
	test.That(t, pan.writes, test.ShouldResemble, []uint32{90})
	test.That(t, tilt.writes, test.ShouldHaveLength, 0)
	test.That(t, mount.PanAngle(), test.ShouldEqual, 90.2)
	test.That(t, mount.RoundedPanAngle(), test.ShouldEqual, 90)
	test.That(t, mount.AtPanLimit(), test.ShouldBeFalse)

	// Reversed tilt: 180 - 60 = 120, within the mirrored 45 to 135.
	test.That(t, mount.TiltTo(ctx, 60), test.ShouldBeNil)
	test.That(t, tilt.writes, test.ShouldResemble, []uint32{120})
	test.That(t, mount.TiltAngle(), test.ShouldEqual, 120)
	test.That(t, mount.AtTiltLimit(), test.ShouldBeFalse)

	test.That(t, mount.PanTo(ctx, 500), test.ShouldBeNil)
	test.That(t, mount.RoundedPanAngle(), test.ShouldEqual, 150)
	test.That(t, mount.AtPanLimit(), test.ShouldBeTrue)
}

func TestCameraMountPointAt(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(t)

	pan := &fakeActuator{}
	tilt := &fakeActuator{}
	mount, err := NewCameraMount(pan, tilt, &Config{}, logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, mount.PointAt(ctx, 45, 135), test.ShouldBeNil)
	test.That(t, pan.writes, test.ShouldResemble, []uint32{45})
	test.That(t, tilt.writes, test.ShouldResemble, []uint32{135})
}
