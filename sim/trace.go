// Dispatch-trace recording. Records are pure data appended by the simulator
// as it runs; the Gantt renderer and the conservation checks in the test
// suite consume them.

package sim

// DispatchRecord captures a single occupancy of the CPU: process ProcessID
// ran from tick Start up to (but not including) tick End. Remaining is the
// burst time still owed after this dispatch; zero means the process
// completed at End.
type DispatchRecord struct {
	ProcessID uint32
	Start     uint32
	End       uint32
	Remaining uint32
}

// Elapsed returns the number of ticks consumed by this dispatch. It is zero
// only for processes admitted with a zero burst time.
func (d DispatchRecord) Elapsed() uint32 {
	return d.End - d.Start
}

// TotalDispatched sums the elapsed ticks across a trace. With contiguous
// arrivals this equals the total burst time of all processes.
func TotalDispatched(trace []DispatchRecord) uint64 {
	var total uint64
	for _, d := range trace {
		total += uint64(d.Elapsed())
	}
	return total
}
