// Package spartanutils contains helpers shared by the SpartanLib component models.
package spartanutils

import "go.viam.com/rdk/resource"

// Family is the model family for the SpartanLib module.
var Family = resource.NewModelFamily("chuckb", "spartanlib")
