package query

import (
	"fmt"
	"time"

	"github.com/Amyn617/Nasa/internal/catalog"
)

const dateLayout = "2006-01-02"

// Validate checks the request and returns every problem found, so callers
// can report all input errors at once. An empty slice means valid.
func (r Request) Validate() []string {
	var errs []string

	if r.Location.Lat < -90 || r.Location.Lat > 90 {
		errs = append(errs, "latitude must be between -90 and 90")
	}
	if r.Location.Lon < -180 || r.Location.Lon > 180 {
		errs = append(errs, "longitude must be between -180 and 180")
	}

	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		errs = append(errs, "date must be in format YYYY-MM-DD")
	}

	if len(r.Parameters) == 0 {
		errs = append(errs, "at least one parameter must be selected")
	}
	for _, p := range r.Parameters {
		if _, ok := catalog.Lookup(p); !ok {
			errs = append(errs, fmt.Sprintf("unknown parameter: %s", p))
		}
	}

	if r.Years < 0 {
		errs = append(errs, "analysis_years must not be negative")
	}

	return errs
}

// dayOfYear extracts the 1-based day of year from a validated date string.
func dayOfYear(date string) (int, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("parse date: %w", err)
	}
	return t.YearDay(), nil
}
