// Package limelight is a client for the LimeLight vision co-processor.
package limelight

/*
	The LimeLight appliance does its target detection on-device and
	publishes results through a shared table of doubles. This client
	caches the target data on each Refresh and exposes the camera's
	integer coded control entries as typed modes.
*/

import (
	"context"

	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
)

// Entries published by the LimeLight.
const (
	KeyLEDMode       = "ledMode"
	KeyCameraMode    = "camMode"
	KeySnapshotMode  = "snapshot"
	KeyStreamMode    = "stream"
	KeyTargetX       = "tx"
	KeyTargetY       = "ty"
	KeyTargetArea    = "ta"
	KeyTargetVisible = "tv"
)

// LEDMode controls the camera's illumination LEDs.
type LEDMode int

// LED modes as coded by the camera.
const (
	LEDPipeline LEDMode = iota // defer to the active pipeline's preference
	LEDOff
	LEDBlink
	LEDOn
)

// CameraMode switches between vision processing and a human friendly
// driver feed.
type CameraMode int

// Camera modes as coded by the camera.
const (
	CameraVisionProcessing CameraMode = iota
	CameraDriverStation
)

// SnapshotMode controls on-device snapshot capture.
type SnapshotMode int

// Snapshot modes as coded by the camera.
const (
	SnapshotStop SnapshotMode = iota
	SnapshotTake
)

// StreamMode selects the layout of the camera's video stream.
type StreamMode int

// Stream modes as coded by the camera.
const (
	StreamStandard StreamMode = iota
	StreamPiPMain
	StreamPiPSecondary
)

// LimeLight reads target data from and writes camera modes to a
// co-processor table.
type LimeLight struct {
	table  Table
	logger logging.Logger

	x, y, area float64
	hasTarget  bool
}

// New builds a client over the given table. The LED is forced off so a
// freshly booted camera does not blind anyone standing in front of the
// robot.
func New(ctx context.Context, table Table, logger logging.Logger) (*LimeLight, error) {
	if table == nil {
		return nil, errors.New("need a table for limelight")
	}
	l := &LimeLight{table: table, logger: logger}
	if err := l.SetLEDMode(ctx, LEDOff); err != nil {
		return nil, errors.Wrap(err, "couldn't force limelight LED off")
	}
	return l, nil
}

// Refresh pulls the current target data out of the table. The camera
// publishes tv as 1 while it sees a valid target.
func (l *LimeLight) Refresh(ctx context.Context) error {
	x, err := l.table.Number(ctx, KeyTargetX, 0)
	if err != nil {
		return errors.Wrap(err, "couldn't read target x offset")
	}
	y, err := l.table.Number(ctx, KeyTargetY, 0)
	if err != nil {
		return errors.Wrap(err, "couldn't read target y offset")
	}
	area, err := l.table.Number(ctx, KeyTargetArea, 0)
	if err != nil {
		return errors.Wrap(err, "couldn't read target area")
	}
	visible, err := l.table.Number(ctx, KeyTargetVisible, 0)
	if err != nil {
		return errors.Wrap(err, "couldn't read target visibility")
	}

	l.x, l.y, l.area = x, y, area
	l.hasTarget = visible == 1
	l.logger.Debugw("limelight data",
		"has_target", l.hasTarget,
		"target_x", l.x,
		"target_y", l.y,
		"target_area", l.area,
	)
	return nil
}

// TargetX returns the horizontal offset to the target, in degrees, as
// of the last Refresh.
func (l *LimeLight) TargetX() float64 {
	return l.x
}

// TargetY returns the vertical offset to the target, in degrees, as of
// the last Refresh.
func (l *LimeLight) TargetY() float64 {
	return l.y
}

// TargetArea returns the target's share of the image as of the last
// Refresh.
func (l *LimeLight) TargetArea() float64 {
	return l.area
}

// HasTarget reports whether the camera saw a valid target as of the
// last Refresh.
func (l *LimeLight) HasTarget() bool {
	return l.hasTarget
}

// SetLEDMode sets the camera's LED mode.
func (l *LimeLight) SetLEDMode(ctx context.Context, mode LEDMode) error {
	return l.table.SetNumber(ctx, KeyLEDMode, float64(mode))
}

// LEDMode returns the camera's current LED mode.
func (l *LimeLight) LEDMode(ctx context.Context) (LEDMode, error) {
	value, err := l.table.Number(ctx, KeyLEDMode, 0)
	return LEDMode(value), err
}

// SetCameraMode sets the camera's processing mode.
func (l *LimeLight) SetCameraMode(ctx context.Context, mode CameraMode) error {
	return l.table.SetNumber(ctx, KeyCameraMode, float64(mode))
}

// SetSnapshotMode starts or stops on-device snapshots.
func (l *LimeLight) SetSnapshotMode(ctx context.Context, mode SnapshotMode) error {
	return l.table.SetNumber(ctx, KeySnapshotMode, float64(mode))
}

// SetStreamMode sets the camera's stream layout.
func (l *LimeLight) SetStreamMode(ctx context.Context, mode StreamMode) error {
	return l.table.SetNumber(ctx, KeyStreamMode, float64(mode))
}
