// Package metrics derives steady-state quantities from a solved circuit.
package metrics

import (
	"math"

	"github.com/san-kum/voltlab/internal/circuit"
)

// DissipatedPower returns the total power burned in resistive branches,
// P = Σ V·I over the solved branch currents.
func DissipatedPower(res *circuit.Result) float64 {
	total := 0.0
	for _, br := range res.Branches {
		total += res.Voltage() * br.Current
	}
	return total
}

// SourcePower returns the power delivered by the circuit's current
// sources at the solved node voltage.
func SourcePower(c *circuit.Circuit, res *circuit.Result) float64 {
	total := 0.0
	for _, e := range c.Elements() {
		if e.Kind == circuit.CurrentSource {
			total += e.Value * res.Voltage()
		}
	}
	return total
}

// CurrentBalance returns the KCL residual at the shared node: the sum of
// resistive branch currents minus the injected source current. Zero (to
// numerical tolerance) for a consistent solution.
func CurrentBalance(c *circuit.Circuit, res *circuit.Result) float64 {
	injected := 0.0
	for _, e := range c.Elements() {
		if e.Kind == circuit.CurrentSource {
			injected += e.Value
		}
	}

	drawn := 0.0
	for _, br := range res.Branches {
		drawn += br.Current
	}

	return math.Abs(drawn - injected)
}

// Summary bundles the derived metrics for reporting and storage.
func Summary(c *circuit.Circuit, res *circuit.Result) map[string]float64 {
	return map[string]float64{
		"node_voltage":     res.Voltage(),
		"dissipated_power": DissipatedPower(res),
		"source_power":     SourcePower(c, res),
		"kcl_residual":     CurrentBalance(c, res),
	}
}
