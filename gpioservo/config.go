// Package gpioservo contains the servo config and validates it against the owning board.
package gpioservo

import (
	"github.com/pkg/errors"
	"go.viam.com/rdk/resource"
)

// Config is the config for a gpio servo.
type Config struct {
	BoardName string `json:"board"`
	Pin       string `json:"pin"`

	Min         int      `json:"min,omitempty"`                    // specifies a user inputted minimum position limitation
	Max         int      `json:"max,omitempty"`                    // specifies a user inputted maximum position limitation
	StartPos    *float64 `json:"starting_position_degs,omitempty"` // specifies a starting position. Defaults to 90
	HoldPos     *bool    `json:"hold_position,omitempty"`          // defaults True. False holds for 250 ms then releases the servo
	MaxRotation int      `json:"max_rotation_deg,omitempty"`       // specifies a hardware position limitation. Defaults to 180
	Freq        uint     `json:"frequency_hz,omitempty"`           // PWM frequency. Defaults to 50
}

// Validate ensures all parts of the config are valid.
func (config *Config) Validate(path string) ([]string, []string, error) {
	var deps []string
	if config.Pin == "" {
		return nil, nil, resource.NewConfigValidationError(path,
			errors.New("need pin for gpio servo"))
	}
	if config.BoardName == "" {
		return nil, nil, resource.NewConfigValidationError(path,
			errors.New("need the name of the board"))
	}
	deps = append(deps, config.BoardName)
	return deps, nil, nil
}
