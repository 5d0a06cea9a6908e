package cameramount

import (
	"github.com/pkg/errors"
	"go.viam.com/rdk/resource"
)

// Config describes the travel limits and mounting orientation of a
// camera mount. A limit pair left at zero defaults to the full 0 to 180
// servo travel.
type Config struct {
	PanLowerLimitDeg  int  `json:"pan_lower_limit_deg,omitempty"`
	PanUpperLimitDeg  int  `json:"pan_upper_limit_deg,omitempty"`
	ReversePan        bool `json:"reverse_pan,omitempty"`
	TiltLowerLimitDeg int  `json:"tilt_lower_limit_deg,omitempty"`
	TiltUpperLimitDeg int  `json:"tilt_upper_limit_deg,omitempty"`
	ReverseTilt       bool `json:"reverse_tilt,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate(path string) ([]string, []string, error) {
	if err := validateLimits(conf.PanLowerLimitDeg, conf.PanUpperLimitDeg); err != nil {
		return nil, nil, resource.NewConfigValidationError(path, errors.Wrap(err, "pan"))
	}
	if err := validateLimits(conf.TiltLowerLimitDeg, conf.TiltUpperLimitDeg); err != nil {
		return nil, nil, resource.NewConfigValidationError(path, errors.Wrap(err, "tilt"))
	}
	return nil, nil, nil
}

func validateLimits(lower, upper int) error {
	if lower < 0 || upper > fullTravelDeg {
		return errors.Errorf("limits %d to %d outside servo travel 0 to %d", lower, upper, fullTravelDeg)
	}
	if upper < lower {
		return errors.Errorf("upper limit %d is less than lower limit %d", upper, lower)
	}
	return nil
}
