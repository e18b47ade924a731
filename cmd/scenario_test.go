package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/cpusim/rrsim/sim"
)

func TestParseScenario_FullFile(t *testing.T) {
	// GIVEN a scenario file with a quantum and two processes
	data := []byte(`
time_slice: 3
processes:
  - id: 0
    arrival_time: 70
    burst_time: 3
  - id: 1
    arrival_time: 9
    burst_time: 2
`)

	// WHEN it is parsed
	s, err := ParseScenario(data)
	require.NoError(t, err)

	// THEN the quantum and process fields come through unchanged
	assert.Equal(t, uint32(3), s.TimeSlice)
	require.Len(t, s.Processes, 2)
	assert.Equal(t, sim.Process{ID: 0, ArrivalTime: 70, BurstTime: 3}, s.Processes[0])
	assert.Equal(t, sim.Process{ID: 1, ArrivalTime: 9, BurstTime: 2}, s.Processes[1])
}

func TestParseScenario_MalformedYAML_ReturnsError(t *testing.T) {
	_, err := ParseScenario([]byte("time_slice: [not a number"))
	assert.Error(t, err)
}

func TestParseScenario_EmptyProcesses_IsValid(t *testing.T) {
	s, err := ParseScenario([]byte("time_slice: 2\nprocesses: []\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Processes)
}

func TestLoadScenario_RoundTripThroughEngine(t *testing.T) {
	// GIVEN the built-in dataset written out as a scenario file
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := []byte(`
time_slice: 3
processes:
  - {id: 0, arrival_time: 70, burst_time: 3}
  - {id: 1, arrival_time: 9, burst_time: 2}
  - {id: 2, arrival_time: 3, burst_time: 39}
  - {id: 3, arrival_time: 5, burst_time: 29}
  - {id: 4, arrival_time: 30, burst_time: 90}
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	// WHEN it is loaded and executed
	s, err := LoadScenario(path)
	require.NoError(t, err)
	results, err := sim.Execute(s.Processes, s.TimeSlice)
	require.NoError(t, err)

	// THEN the engine reproduces the reference answer
	want := sim.CanonicalResults()
	sim.SortByArrival(results)
	sim.SortByArrival(want)
	assert.Equal(t, want, results)
}

func TestLoadScenario_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
