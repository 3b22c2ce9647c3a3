// Package sweep re-solves a circuit across a range of one element's
// values, producing a voltage curve for plotting and export.
package sweep

import (
	"fmt"
	"sync"

	"github.com/san-kum/voltlab/internal/circuit"
)

// Range describes the element value sweep: Points evenly spaced values
// from From to To for the element with the given label.
type Range struct {
	Label  string
	From   float64
	To     float64
	Points int
}

// Series holds the swept values and the node voltage solved at each.
type Series struct {
	Values   []float64
	Voltages []float64
}

// Run solves one independent circuit per sweep point. Each point gets
// its own circuit built from the base elements, so points can be solved
// concurrently without shared state.
func Run(base []circuit.Element, r Range) (*Series, error) {
	if r.Points < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 points, got %d", r.Points)
	}

	found := false
	for _, e := range base {
		if e.Label == r.Label {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("sweep: no element labeled %q", r.Label)
	}

	series := &Series{
		Values:   make([]float64, r.Points),
		Voltages: make([]float64, r.Points),
	}
	errs := make([]error, r.Points)
	step := (r.To - r.From) / float64(r.Points-1)

	var wg sync.WaitGroup
	for i := 0; i < r.Points; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			value := r.From + float64(idx)*step
			series.Values[idx] = value

			c := circuit.New()
			for _, e := range base {
				if e.Label == r.Label {
					e.Value = value
				}
				c.Add(e)
			}

			res, err := c.Solve()
			if err != nil {
				errs[idx] = fmt.Errorf("sweep: %s=%v: %w", r.Label, value, err)
				return
			}
			series.Voltages[idx] = res.Voltage()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return series, nil
}
