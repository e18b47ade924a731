package cmd

import (
	"fmt"
	"io"

	sim "github.com/cpusim/rrsim/sim"
)

// RunDemo executes the built-in dataset, checks the engine's output against
// the known-good completion times, and writes the results table to w. It is
// the program's embedded self-test: a mismatch means the engine regressed.
func RunDemo(w io.Writer) error {
	results, err := sim.Execute(sim.CanonicalProcesses(), sim.CanonicalTimeSlice)
	if err != nil {
		return err
	}
	expected := sim.CanonicalResults()

	sim.SortByArrival(results)
	sim.SortByArrival(expected)

	if err := sim.WriteTable(w, results); err != nil {
		return err
	}

	if len(results) != len(expected) {
		return fmt.Errorf("expected %d results, got %d", len(expected), len(results))
	}
	for i := range expected {
		if results[i] != expected[i] {
			return fmt.Errorf("result mismatch for process %d: got %+v, want %+v",
				expected[i].ID, results[i], expected[i])
		}
	}
	fmt.Fprintln(w, "All tests passed")
	return nil
}
