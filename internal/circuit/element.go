package circuit

import "fmt"

// Kind identifies the concrete behavior of an element. The set is closed.
type Kind int

const (
	Resistor Kind = iota
	Capacitor
	Inductor
	VoltageSource
	CurrentSource
)

func (k Kind) String() string {
	switch k {
	case Resistor:
		return "resistor"
	case Capacitor:
		return "capacitor"
	case Inductor:
		return "inductor"
	case VoltageSource:
		return "voltage_source"
	case CurrentSource:
		return "current_source"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalJSON encodes a Kind by name so exported results stay readable.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "resistor":
		return Resistor, nil
	case "capacitor":
		return Capacitor, nil
	case "inductor":
		return Inductor, nil
	case "voltage_source":
		return VoltageSource, nil
	case "current_source":
		return CurrentSource, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Element is one circuit component: a kind tag plus its nominal value
// (ohms, farads, henries, volts or amps depending on the kind). Elements
// are immutable once constructed. Node is the terminal node index; the
// supported topology places every element on node 0.
type Element struct {
	Kind  Kind
	Label string
	Value float64
	Node  int
}

func NewResistor(label string, ohms float64) Element {
	return Element{Kind: Resistor, Label: label, Value: ohms}
}

func NewCapacitor(label string, farads float64) Element {
	return Element{Kind: Capacitor, Label: label, Value: farads}
}

func NewInductor(label string, henries float64) Element {
	return Element{Kind: Inductor, Label: label, Value: henries}
}

func NewVoltageSource(label string, volts float64) Element {
	return Element{Kind: VoltageSource, Label: label, Value: volts}
}

func NewCurrentSource(label string, amps float64) Element {
	return Element{Kind: CurrentSource, Label: label, Value: amps}
}

// VoltageGiven returns the element's terminal voltage for a branch
// current, under the idealized DC large-signal model. Reactive elements
// return 0: they are not characterizable at DC, not absent.
func (e Element) VoltageGiven(current float64) (float64, error) {
	switch e.Kind {
	case Resistor:
		return current * e.Value, nil
	case Capacitor, Inductor:
		return 0, nil
	case VoltageSource:
		return e.Value, nil
	case CurrentSource:
		// Voltage is fixed by the external network.
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownKind, e.Kind)
	}
}

// CurrentGiven returns the element's branch current for a terminal
// voltage. A zero-valued resistor fails with ErrDivideByZero rather than
// producing Inf.
func (e Element) CurrentGiven(voltage float64) (float64, error) {
	switch e.Kind {
	case Resistor:
		if e.Value == 0 {
			return 0, &ElementError{Label: e.Label, Wrapped: ErrDivideByZero}
		}
		return voltage / e.Value, nil
	case Capacitor, Inductor:
		return 0, nil
	case VoltageSource:
		// Current is fixed by the external network.
		return 0, nil
	case CurrentSource:
		return e.Value, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownKind, e.Kind)
	}
}
