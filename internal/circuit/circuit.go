package circuit

import (
	"errors"
	"fmt"

	"github.com/san-kum/voltlab/internal/solver"
	"gonum.org/v1/gonum/mat"
)

// Circuit owns an ordered list of elements. Insertion order does not
// affect the solve, only the order branches are reported in.
type Circuit struct {
	elements []Element
}

func New() *Circuit {
	return &Circuit{elements: make([]Element, 0)}
}

// Add transfers an element into the circuit.
func (c *Circuit) Add(e Element) {
	c.elements = append(c.elements, e)
}

// Elements returns a copy of the element list in insertion order.
func (c *Circuit) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

func (c *Circuit) Len() int { return len(c.elements) }

// Branch is the solved current through one resistive element.
type Branch struct {
	Label   string  `json:"label"`
	Kind    Kind    `json:"kind"`
	Current float64 `json:"current"`
}

// Result holds solved node voltages and per-resistor branch currents,
// branches in element insertion order.
type Result struct {
	Voltages []float64
	Branches []Branch
}

// Voltage returns the shared node's voltage.
func (r *Result) Voltage() float64 {
	if len(r.Voltages) == 0 {
		return 0
	}
	return r.Voltages[0]
}

// Solve assembles the conductance matrix and source vector from the
// element list, solves G·V = I, and derives branch currents. The system
// is rebuilt from scratch on every call; elements are never mutated.
func (c *Circuit) Solve() (*Result, error) {
	const nodes = 1

	g := mat.NewDense(nodes, nodes, nil)
	b := mat.NewVecDense(nodes, nil)

	for _, e := range c.elements {
		if e.Node < 0 || e.Node >= nodes {
			return nil, &ElementError{Label: e.Label, Wrapped: ErrUnsupportedTopology}
		}
		switch e.Kind {
		case Resistor:
			if e.Value == 0 {
				return nil, &ElementError{Label: e.Label, Wrapped: ErrDivideByZero}
			}
			g.Set(e.Node, e.Node, g.At(e.Node, e.Node)+1/e.Value)
		case CurrentSource:
			// Positive magnitude injects current into the node.
			b.SetVec(e.Node, b.AtVec(e.Node)+e.Value)
		}
	}

	if g.At(0, 0) == 0 {
		return nil, ErrSingularMatrix
	}

	v, err := solver.Solve(g, b)
	if err != nil {
		if errors.Is(err, solver.ErrSingular) {
			return nil, ErrSingularMatrix
		}
		return nil, fmt.Errorf("circuit: solve: %w", err)
	}

	res := &Result{
		Voltages: make([]float64, nodes),
		Branches: make([]Branch, 0),
	}
	for i := 0; i < nodes; i++ {
		res.Voltages[i] = v.AtVec(i)
	}

	for _, e := range c.elements {
		if e.Kind != Resistor {
			continue
		}
		i, err := e.CurrentGiven(res.Voltages[e.Node])
		if err != nil {
			return nil, err
		}
		res.Branches = append(res.Branches, Branch{Label: e.Label, Kind: e.Kind, Current: i})
	}

	return res, nil
}
