package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/cpusim/rrsim/sim"
)

// Scenario is the YAML shape of a simulation input file:
//
//	time_slice: 3
//	processes:
//	  - id: 0
//	    arrival_time: 70
//	    burst_time: 3
type Scenario struct {
	TimeSlice uint32        `yaml:"time_slice"`
	Processes []sim.Process `yaml:"processes"`
}

// LoadScenario reads and parses a YAML scenario file. Engine-level contract
// violations (zero time slice, duplicate IDs) are reported by the engine,
// not here; this only validates the YAML shape.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario parses YAML scenario bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}
