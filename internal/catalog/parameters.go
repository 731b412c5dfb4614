// Package catalog holds the static catalogs the service exposes: the
// weather parameters that can be analyzed (with their standard comfort and
// extreme thresholds) and a set of well-known locations for lookups.
package catalog

import (
	"strings"

	"github.com/Amyn617/Nasa/internal/climatology"
)

// Parameter describes one analyzable weather variable. Code follows the
// provider convention "<variable>:<units>", e.g. "t_2m:C". Thresholds may be
// empty for variables that have no standard hot/cold/comfort bands.
type Parameter struct {
	Code        string                   `json:"code"`
	Description string                   `json:"description"`
	Units       string                   `json:"units"`
	Thresholds  climatology.ThresholdSet `json:"thresholds"`
}

func f(v float64) *float64 { return &v }

// parameters is ordered the way the analysis UI lists them; keep stable.
var parameters = []Parameter{
	{
		Code:        "t_2m:C",
		Description: "Temperature at 2 meters above ground",
		Thresholds: climatology.ThresholdSet{
			Hot:         f(32),
			Cold:        f(0),
			Comfortable: &climatology.ComfortRange{Min: 18, Max: 24},
		},
	},
	{
		Code:        "t_max_2m_24h:C",
		Description: "Maximum temperature in 24 hours",
		Thresholds: climatology.ThresholdSet{
			Hot:         f(35),
			Cold:        f(5),
			Comfortable: &climatology.ComfortRange{Min: 20, Max: 28},
		},
	},
	{
		Code:        "t_min_2m_24h:C",
		Description: "Minimum temperature in 24 hours",
		Thresholds: climatology.ThresholdSet{
			Hot:         f(25),
			Cold:        f(-5),
			Comfortable: &climatology.ComfortRange{Min: 10, Max: 20},
		},
	},
	{
		Code:        "precip_24h:mm",
		Description: "Precipitation in 24 hours",
		Thresholds: climatology.ThresholdSet{
			Comfortable: &climatology.ComfortRange{Min: 0, Max: 5},
		},
	},
	{
		Code:        "wind_speed_10m:ms",
		Description: "Wind speed at 10 meters height",
		Thresholds: climatology.ThresholdSet{
			Comfortable: &climatology.ComfortRange{Min: 0, Max: 25},
		},
	},
	{
		Code:        "wind_gusts_10m_24h:ms",
		Description: "Maximum wind gusts in 24 hours",
	},
	{
		Code:        "relative_humidity_2m:p",
		Description: "Relative humidity at 2 meters",
		Thresholds: climatology.ThresholdSet{
			Comfortable: &climatology.ComfortRange{Min: 40, Max: 60},
		},
	},
	{
		Code:        "msl_pressure:hPa",
		Description: "Mean sea level pressure",
	},
	{
		Code:        "sunshine_duration_24h:h",
		Description: "Sunshine duration in 24 hours",
	},
}

func init() {
	for i := range parameters {
		parameters[i].Units = unitsOf(parameters[i].Code)
	}
}

// unitsOf extracts the units suffix from a parameter code.
func unitsOf(code string) string {
	if _, units, ok := strings.Cut(code, ":"); ok {
		return units
	}
	return ""
}

// Parameters returns the full parameter catalog in display order. The
// returned slice is a copy; callers may reorder it freely.
func Parameters() []Parameter {
	out := make([]Parameter, len(parameters))
	copy(out, parameters)
	return out
}

// Lookup finds a parameter by its exact code.
func Lookup(code string) (Parameter, bool) {
	for _, p := range parameters {
		if p.Code == code {
			return p, true
		}
	}
	return Parameter{}, false
}

// ThresholdsFor returns the standard thresholds for a parameter code,
// matching on the variable name so "t_2m:C" and "t_2m:F" share thresholds.
// Unknown codes get an empty set, which disables threshold probabilities.
func ThresholdsFor(code string) climatology.ThresholdSet {
	variable, _, _ := strings.Cut(code, ":")
	variable = strings.ToLower(variable)
	for _, p := range parameters {
		name, _, _ := strings.Cut(p.Code, ":")
		if strings.ToLower(name) == variable {
			return p.Thresholds
		}
	}
	return climatology.ThresholdSet{}
}
