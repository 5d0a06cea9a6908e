// Package pathfinder bundles the inputs handed to an external
// trajectory generator. Generating the trajectory itself is delegated.
package pathfinder

import "github.com/pkg/errors"

// Waypoint is a pose a generated path must pass through. X and Y are in
// meters, Angle in radians.
type Waypoint struct {
	X     float64
	Y     float64
	Angle float64
}

// Fit selects the spline family used between waypoints.
type Fit int

// Supported spline fits.
const (
	FitHermiteCubic Fit = iota
	FitHermiteQuintic
)

// Config bounds the motion profile of a generated trajectory.
type Config struct {
	Fit             Fit
	Samples         int
	DT              float64 // seconds between generated segments
	MaxVelocity     float64
	MaxAcceleration float64
	MaxJerk         float64
}

// TrajectoryIngredients names a path and bundles everything a generator
// needs to produce it.
type TrajectoryIngredients struct {
	Name   string
	Config Config
	Points []Waypoint
}

// NewTrajectoryIngredients builds a named bundle from a profile config
// and the waypoints the path must visit, in order.
func NewTrajectoryIngredients(name string, config Config, points ...Waypoint) TrajectoryIngredients {
	return TrajectoryIngredients{
		Name:   name,
		Config: config,
		Points: points,
	}
}

// Validate ensures the bundle can produce a trajectory.
func (t TrajectoryIngredients) Validate() error {
	if t.Name == "" {
		return errors.New("need a name for trajectory ingredients")
	}
	if len(t.Points) < 2 {
		return errors.Errorf("trajectory %s needs at least two waypoints", t.Name)
	}
	if t.Config.Samples <= 0 {
		return errors.Errorf("trajectory %s needs a positive sample count", t.Name)
	}
	if t.Config.DT <= 0 {
		return errors.Errorf("trajectory %s needs a positive time step", t.Name)
	}
	return nil
}
