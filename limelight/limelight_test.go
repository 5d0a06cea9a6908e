package limelight

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

type failingTable struct{}

func (failingTable) Number(ctx context.Context, key string, defaultValue float64) (float64, error) {
	return 0, errors.New("table offline")
}

func (failingTable) SetNumber(ctx context.Context, key string, value float64) error {
	return errors.New("table offline")
}

func TestNewLimeLight(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(t)

	t.Run("missing table", func(t *testing.T) {
		_, err := New(ctx, nil, logger)
		test.That(t, err.Error(), test.ShouldContainSubstring, "need a table")
	})

	t.Run("construction forces the LED off", func(t *testing.T) {
		table := NewMemTable()
		_, err := New(ctx, table, logger)
		test.That(t, err, test.ShouldBeNil)

		mode, err := table.Number(ctx, KeyLEDMode, -1)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mode, test.ShouldEqual, float64(LEDOff))
	})

	t.Run("unreachable table fails construction", func(t *testing.T) {
		_, err := New(ctx, failingTable{}, logger)
		test.That(t, err.Error(), test.ShouldContainSubstring, "couldn't force limelight LED off")
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(t)

	table := NewMemTable()
	limeLight, err := New(ctx, table, logger)
	test.That(t, err, test.ShouldBeNil)

	t.Run("no data published yet", func(t *testing.T) {
		test.That(t, limeLight.Refresh(ctx), test.ShouldBeNil)
		test.That(t, limeLight.TargetX(), test.ShouldEqual, 0)
		test.That(t, limeLight.TargetY(), test.ShouldEqual, 0)
		test.That(t, limeLight.HasTarget(), test.ShouldBeFalse)
	})

	t.Run("target visible", func(t *testing.T) {
		test.That(t, table.SetNumber(ctx, KeyTargetX, -12.5), test.ShouldBeNil)
		test.That(t, table.SetNumber(ctx, KeyTargetY, 3.25), test.ShouldBeNil)
		test.That(t, table.SetNumber(ctx, KeyTargetArea, 1.75), test.ShouldBeNil)
		test.That(t, table.SetNumber(ctx, KeyTargetVisible, 1), test.ShouldBeNil)

		test.That(t, limeLight.Refresh(ctx), test.ShouldBeNil)
		test.That(t, limeLight.TargetX(), test.ShouldEqual, -12.5)
		test.That(t, limeLight.TargetY(), test.ShouldEqual, 3.25)
		test.That(t, limeLight.TargetArea(), test.ShouldEqual, 1.75)
		test.That(t, limeLight.HasTarget(), test.ShouldBeTrue)
	})

	t.Run("target lost", func(t *testing.T) {
		test.That(t, table.SetNumber(ctx, KeyTargetVisible, 0), test.ShouldBeNil)
		test.That(t, limeLight.Refresh(ctx), test.ShouldBeNil)
		test.That(t, limeLight.HasTarget(), test.ShouldBeFalse)
	})
}

func TestModes(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(t)

	table := NewMemTable()
	limeLight, err := New(ctx, table, logger)
	test.That(t, err, test.ShouldBeNil)

	readNumber := func(key string) float64 {
		value, err := table.Number(ctx, key, -1)
		test.That(t, err, test.ShouldBeNil)
		return value
	}

	test.That(t, limeLight.SetLEDMode(ctx, LEDOn), test.ShouldBeNil)
	test.That(t, readNumber(KeyLEDMode), test.ShouldEqual, 3)

	mode, err := limeLight.LEDMode(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mode, test.ShouldEqual, LEDOn)

	test.That(t, limeLight.SetLEDMode(ctx, LEDBlink), test.ShouldBeNil)
	test.That(t, readNumber(KeyLEDMode), test.ShouldEqual, 2)

	test.That(t, limeLight.SetCameraMode(ctx, CameraDriverStation), test.ShouldBeNil)
	test.That(t, readNumber(KeyCameraMode), test.ShouldEqual, 1)

	test.That(t, limeLight.SetCameraMode(ctx, CameraVisionProcessing), test.ShouldBeNil)
	test.That(t, readNumber(KeyCameraMode), test.ShouldEqual, 0)

	test.That(t, limeLight.SetSnapshotMode(ctx, SnapshotTake), test.ShouldBeNil)
	test.That(t, readNumber(KeySnapshotMode), test.ShouldEqual, 1)

	test.That(t, limeLight.SetStreamMode(ctx, StreamPiPSecondary), test.ShouldBeNil)
	test.That(t, readNumber(KeyStreamMode), test.ShouldEqual, 2)
}
