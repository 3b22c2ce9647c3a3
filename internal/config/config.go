package config

import (
	"fmt"
	"os"

	"github.com/san-kum/voltlab/internal/circuit"
	"gopkg.in/yaml.v3"
)

const (
	DefaultResistance = 100.0
	DefaultCurrent    = 0.1
	DefaultPoints     = 50
)

// Config is a yaml netlist: the circuit's elements plus an optional
// sweep block.
type Config struct {
	Name     string          `yaml:"name"`
	Elements []ElementConfig `yaml:"elements"`
	Sweep    *SweepConfig    `yaml:"sweep,omitempty"`
}

type ElementConfig struct {
	Kind  string  `yaml:"kind"`
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

type SweepConfig struct {
	Element string  `yaml:"element"`
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Points  int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "basic",
		Elements: []ElementConfig{
			{Kind: "resistor", Label: "R1", Value: DefaultResistance},
			{Kind: "current_source", Label: "I1", Value: DefaultCurrent},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Elements) == 0 {
		return nil, fmt.Errorf("config %s: no elements", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the circuit described by the netlist.
func (c *Config) Build() (*circuit.Circuit, error) {
	circ := circuit.New()
	for i, ec := range c.Elements {
		kind, err := circuit.ParseKind(ec.Kind)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		label := ec.Label
		if label == "" {
			label = fmt.Sprintf("%s%d", ec.Kind, i)
		}
		circ.Add(circuit.Element{Kind: kind, Label: label, Value: ec.Value})
	}
	return circ, nil
}
