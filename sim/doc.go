// Package sim provides the round-robin CPU scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process identity and the derived ProcessResult fields
//   - queue.go: The cyclic ready queue of entries awaiting CPU time
//   - simulator.go: The clock, the admission scan, and the dispatch loop
//
// # Architecture
//
// Time is a logical tick counter, not wall time. A run seeds the clock at
// the earliest arrival, then repeatedly pops the ready queue front, charges
// it up to one time slice, and re-checks arrivals at the new clock value.
// Unfinished entries rejoin the queue tail; finished ones become results.
//
// A Simulator owns all state for exactly one run, so independent runs may
// execute concurrently in separate goroutines with no locking. Supporting
// output lives alongside the engine: trace.go records per-quantum dispatch
// history, metrics.go aggregates run statistics, report.go renders console
// tables, and fixture.go holds the reference scenario.
package sim
