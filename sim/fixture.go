// The canonical five-process scenario used by the demo command and the test
// suite. Expected completion times were worked out by hand against the
// round-robin definition and survive as the engine's reference answer.

package sim

// CanonicalTimeSlice is the quantum used by the canonical scenario.
const CanonicalTimeSlice uint32 = 3

// CanonicalProcesses returns the reference process set. Arrival times are
// deliberately scattered and several fall mid-quantum, which exercises the
// admit-after-advance rule.
func CanonicalProcesses() []Process {
	return []Process{
		{ID: 0, ArrivalTime: 70, BurstTime: 3},
		{ID: 1, ArrivalTime: 9, BurstTime: 2},
		{ID: 2, ArrivalTime: 3, BurstTime: 39},
		{ID: 3, ArrivalTime: 5, BurstTime: 29},
		{ID: 4, ArrivalTime: 30, BurstTime: 90},
	}
}

// canonicalCompletionTimes maps the index of each canonical process to its
// expected completion tick.
var canonicalCompletionTimes = []uint32{80, 14, 100, 82, 166}

// CanonicalResults returns the expected results for CanonicalProcesses run
// with CanonicalTimeSlice, in input order.
func CanonicalResults() []ProcessResult {
	processes := CanonicalProcesses()
	results := make([]ProcessResult, 0, len(processes))
	for i, p := range processes {
		results = append(results, NewProcessResult(p, canonicalCompletionTimes[i]))
	}
	return results
}
