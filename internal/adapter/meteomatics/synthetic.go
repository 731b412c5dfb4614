package meteomatics

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Synthetic generates plausible historical samples without any upstream
// provider. Values are drawn from parameter-family distributions and seeded
// from the request key, so the same query always yields the same sample.
// It serves two roles: the standalone provider when no Meteomatics
// credentials are configured, and the fallback when a real fetch returns too
// little data.
type Synthetic struct{}

// NewSynthetic creates a synthetic sample generator.
func NewSynthetic() *Synthetic { return &Synthetic{} }

// HistoricalSample returns one deterministic value per requested year.
func (s *Synthetic) HistoricalSample(_ context.Context, lat, lon float64, parameter string, dayOfYear, years int) ([]float64, error) {
	if years <= 0 {
		return nil, fmt.Errorf("years must be positive, got %d", years)
	}

	src := seededSource(lat, lon, parameter, dayOfYear)
	draw := familyDraw(parameter, src)

	out := make([]float64, years)
	for i := range out {
		out[i] = draw()
	}
	return out, nil
}

// seededSource derives a PCG source from the request key, so repeated
// queries for the same location, parameter, and day agree.
func seededSource(lat, lon float64, parameter string, dayOfYear int) *rand.PCG {
	h := fnv.New64a()
	fmt.Fprintf(h, "%.4f|%.4f|%s|%d", lat, lon, parameter, dayOfYear)
	seed := h.Sum64()
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// familyDraw picks the sampling distribution for a parameter family:
// temperatures are Normal(20, 5), precipitation is Exponential with mean 5,
// wind is Gamma(3, scale 4), everything else standard Normal.
func familyDraw(parameter string, src *rand.PCG) func() float64 {
	name := strings.ToLower(parameter)
	switch {
	case strings.Contains(name, "t_2m") || strings.Contains(name, "t_max") || strings.Contains(name, "t_min"):
		d := distuv.Normal{Mu: 20, Sigma: 5, Src: src}
		return d.Rand
	case strings.Contains(name, "precip"):
		d := distuv.Exponential{Rate: 1.0 / 5.0, Src: src}
		return d.Rand
	case strings.Contains(name, "wind"):
		d := distuv.Gamma{Alpha: 3, Beta: 1.0 / 4.0, Src: src}
		return d.Rand
	default:
		d := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		return d.Rand
	}
}
