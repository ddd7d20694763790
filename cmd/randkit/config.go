package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// BenchConfig is the root of an HCL benchmark scenario file.
type BenchConfig struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario describes one benchmark run.
type Scenario struct {
	Name    string   `hcl:"name,label"`
	Type    string   `hcl:"type,optional"`
	Draws   int      `hcl:"draws,optional"`
	Workers int      `hcl:"workers,optional"`
	Min     *float64 `hcl:"min,optional"`
	Max     *float64 `hcl:"max,optional"`
	Seed    *uint64  `hcl:"seed,optional"`
}

// DefaultBenchConfig returns the scenarios run when no file is given.
func DefaultBenchConfig() *BenchConfig {
	return &BenchConfig{
		Scenarios: []Scenario{
			{Name: "uint64", Type: "uint64"},
			{Name: "float64", Type: "float64"},
			{Name: "die-roll", Type: "int64", Min: f64(0), Max: f64(6)},
		},
	}
}

func f64(v float64) *float64 { return &v }

// LoadBenchConfig loads benchmark scenarios from an HCL file, falling back to
// the defaults when the file does not exist.
func LoadBenchConfig(filename string) (*BenchConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultBenchConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config BenchConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if s.Type == "" {
			s.Type = "uint64"
		}
		if (s.Min == nil) != (s.Max == nil) {
			return nil, fmt.Errorf("scenario %q: min and max must be set together", s.Name)
		}
		if s.Min != nil && *s.Max <= *s.Min {
			return nil, fmt.Errorf("scenario %q: max must be greater than min", s.Name)
		}
	}
	return &config, nil
}
