package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/voltlab/internal/circuit"
)

func TestRun_LinearInSource(t *testing.T) {
	base := []circuit.Element{
		circuit.NewResistor("R1", 100),
		circuit.NewCurrentSource("I1", 0),
	}

	series, err := Run(base, Range{Label: "I1", From: 0, To: 1.0, Points: 11})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(series.Values) != 11 || len(series.Voltages) != 11 {
		t.Fatalf("expected 11 points, got %d/%d", len(series.Values), len(series.Voltages))
	}

	// V = I * R: the curve is linear with slope 100.
	for i, is := range series.Values {
		want := is * 100
		if math.Abs(series.Voltages[i]-want) > 1e-9 {
			t.Errorf("point %d: V = %v, want %v", i, series.Voltages[i], want)
		}
	}
}

func TestRun_DoesNotMutateBase(t *testing.T) {
	base := []circuit.Element{
		circuit.NewResistor("R1", 100),
		circuit.NewCurrentSource("I1", 0.5),
	}

	if _, err := Run(base, Range{Label: "I1", From: 0, To: 1, Points: 5}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if base[1].Value != 0.5 {
		t.Errorf("base element mutated: I1 = %v, want 0.5", base[1].Value)
	}
}

func TestRun_UnknownLabel(t *testing.T) {
	base := []circuit.Element{circuit.NewResistor("R1", 100)}

	if _, err := Run(base, Range{Label: "I9", From: 0, To: 1, Points: 5}); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestRun_TooFewPoints(t *testing.T) {
	base := []circuit.Element{circuit.NewResistor("R1", 100)}

	if _, err := Run(base, Range{Label: "R1", From: 0, To: 1, Points: 1}); err == nil {
		t.Error("expected error for single point")
	}
}

func TestRun_PropagatesSolveError(t *testing.T) {
	// Sweeping the lone resistor through zero hits a divide-by-zero point.
	base := []circuit.Element{
		circuit.NewResistor("R1", 100),
		circuit.NewCurrentSource("I1", 0.1),
	}

	_, err := Run(base, Range{Label: "R1", From: 0, To: 100, Points: 5})
	if !errors.Is(err, circuit.ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
}
