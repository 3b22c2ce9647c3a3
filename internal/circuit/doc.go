// Package circuit models a steady-state DC circuit and solves it with
// nodal analysis.
//
// A [Circuit] owns an ordered list of [Element] values. Calling
// [Circuit.Solve] assembles the conductance matrix and source vector from
// the elements, solves G·V = I, and derives per-resistor branch currents:
//
//	c := circuit.New()
//	c.Add(circuit.NewResistor("R1", 100))
//	c.Add(circuit.NewCurrentSource("I1", 0.1))
//	res, err := c.Solve()
//
// Elements are immutable after construction and the matrix is rebuilt on
// every solve, so repeated solves of an unmodified circuit are idempotent.
//
// The supported topology wires every element between a single shared node
// and ground; an element placed on any other node is rejected with
// [ErrUnsupportedTopology] rather than silently collapsed. Reactive
// elements (capacitors, inductors) are carried in the data model but
// contribute exactly zero at DC.
package circuit
