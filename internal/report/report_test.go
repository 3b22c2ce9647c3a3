package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/voltlab/internal/circuit"
)

func solvedCircuit(t *testing.T) (*circuit.Circuit, *circuit.Result) {
	t.Helper()
	c := circuit.New()
	c.Add(circuit.NewResistor("R1", 100))
	c.Add(circuit.NewCurrentSource("I1", 0.1))

	res, err := c.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return c, res
}

func TestTextReport(t *testing.T) {
	c, res := solvedCircuit(t)

	var buf bytes.Buffer
	if err := NewText(&buf).Report(c, res); err != nil {
		t.Fatalf("Report: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"node voltages", "branch currents", "R1", "10 V", "0.1 A"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warning") {
		t.Errorf("unexpected warning in consistent solution:\n%s", out)
	}
}

func TestJSONReport(t *testing.T) {
	c, res := solvedCircuit(t)

	var buf bytes.Buffer
	if err := NewJSON(&buf).Report(c, res); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var decoded struct {
		Voltages []float64          `json:"voltages"`
		Branches []json.RawMessage  `json:"branches"`
		Metrics  map[string]float64 `json:"metrics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded.Voltages) != 1 || decoded.Voltages[0] != 10.0 {
		t.Errorf("voltages = %v, want [10]", decoded.Voltages)
	}
	if len(decoded.Branches) != 1 {
		t.Errorf("expected 1 branch, got %d", len(decoded.Branches))
	}
	if decoded.Metrics["dissipated_power"] != 1.0 {
		t.Errorf("dissipated_power = %v, want 1.0", decoded.Metrics["dissipated_power"])
	}
}
