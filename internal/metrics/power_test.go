package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/voltlab/internal/circuit"
)

func solved(t *testing.T, elems ...circuit.Element) (*circuit.Circuit, *circuit.Result) {
	t.Helper()
	c := circuit.New()
	for _, e := range elems {
		c.Add(e)
	}
	res, err := c.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return c, res
}

func TestPowerConservation(t *testing.T) {
	c, res := solved(t,
		circuit.NewResistor("R1", 50),
		circuit.NewResistor("R2", 50),
		circuit.NewCurrentSource("I1", 1.0),
	)

	dissipated := DissipatedPower(res)
	delivered := SourcePower(c, res)

	// 25 V across 1 A: 25 W in, 25 W out.
	if math.Abs(dissipated-25.0) > 1e-9 {
		t.Errorf("dissipated = %v, want 25.0", dissipated)
	}
	if math.Abs(dissipated-delivered) > 1e-9 {
		t.Errorf("power mismatch: dissipated %v, delivered %v", dissipated, delivered)
	}
}

func TestCurrentBalance(t *testing.T) {
	c, res := solved(t,
		circuit.NewResistor("R1", 100),
		circuit.NewCapacitor("C1", 1e-6),
		circuit.NewCurrentSource("I1", 0.1),
	)

	if residual := CurrentBalance(c, res); residual > 1e-9 {
		t.Errorf("KCL residual = %v, want ~0", residual)
	}
}

func TestSummaryKeys(t *testing.T) {
	c, res := solved(t,
		circuit.NewResistor("R1", 100),
		circuit.NewCurrentSource("I1", 0.1),
	)

	sum := Summary(c, res)
	for _, key := range []string{"node_voltage", "dissipated_power", "source_power", "kcl_residual"} {
		if _, ok := sum[key]; !ok {
			t.Errorf("missing summary key %q", key)
		}
	}
	if math.Abs(sum["node_voltage"]-10.0) > 1e-9 {
		t.Errorf("node_voltage = %v, want 10.0", sum["node_voltage"])
	}
}
