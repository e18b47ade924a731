// Aggregates run-wide statistics for final reporting: average waiting and
// turnaround times, CPU utilization, and throughput.

package sim

import "fmt"

// Metrics summarizes one completed simulation run. Useful for comparing
// time-slice choices and for sanity-checking engine behavior over time.
type Metrics struct {
	CompletedProcesses int    // Number of processes that ran to completion
	TotalBurst         uint64 // Sum of burst times across all processes
	TotalWaiting       uint64 // Sum of waiting times
	TotalTurnaround    uint64 // Sum of turnaround times
	Dispatches         int    // Number of times the CPU was handed a process
	StartTick          uint32 // Tick of the first dispatch
	EndTick            uint32 // Tick of the last completion
	IdleTicks          uint64 // Ticks between StartTick and EndTick with no process running
}

// BuildMetrics derives a Metrics block from the results and the dispatch
// trace of a single run. Both inputs must come from the same run.
func BuildMetrics(results []ProcessResult, trace []DispatchRecord) *Metrics {
	m := &Metrics{CompletedProcesses: len(results), Dispatches: len(trace)}
	for _, r := range results {
		m.TotalBurst += uint64(r.BurstTime)
		m.TotalWaiting += uint64(r.WaitingTime)
		m.TotalTurnaround += uint64(r.TurnaroundTime)
		if r.CompletionTime > m.EndTick {
			m.EndTick = r.CompletionTime
		}
	}
	if len(trace) > 0 {
		m.StartTick = trace[0].Start
		m.IdleTicks = uint64(m.EndTick-m.StartTick) - TotalDispatched(trace)
	}
	return m
}

// Makespan returns the span of ticks from first dispatch to last completion.
func (m *Metrics) Makespan() uint64 {
	return uint64(m.EndTick - m.StartTick)
}

// AvgWaiting returns the mean waiting time, or 0 for an empty run.
func (m *Metrics) AvgWaiting() float64 {
	if m.CompletedProcesses == 0 {
		return 0
	}
	return float64(m.TotalWaiting) / float64(m.CompletedProcesses)
}

// AvgTurnaround returns the mean turnaround time, or 0 for an empty run.
func (m *Metrics) AvgTurnaround() float64 {
	if m.CompletedProcesses == 0 {
		return 0
	}
	return float64(m.TotalTurnaround) / float64(m.CompletedProcesses)
}

// Utilization returns the fraction of the makespan the CPU spent running
// processes. It is 1.0 whenever arrivals are contiguous.
func (m *Metrics) Utilization() float64 {
	span := m.Makespan()
	if span == 0 {
		return 0
	}
	return float64(span-m.IdleTicks) / float64(span)
}

// Throughput returns completed processes per tick of makespan.
func (m *Metrics) Throughput() float64 {
	span := m.Makespan()
	if span == 0 {
		return 0
	}
	return float64(m.CompletedProcesses) / float64(span)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Processes  : %d\n", m.CompletedProcesses)
	if m.CompletedProcesses > 0 {
		fmt.Printf("Dispatches           : %d\n", m.Dispatches)
		fmt.Printf("Makespan             : %d ticks\n", m.Makespan())
		fmt.Printf("Idle Time            : %d ticks\n", m.IdleTicks)
		fmt.Printf("Average Waiting      : %.2f ticks\n", m.AvgWaiting())
		fmt.Printf("Average Turnaround   : %.2f ticks\n", m.AvgTurnaround())
		fmt.Printf("CPU Utilization      : %.2f\n", m.Utilization())
		fmt.Printf("Throughput           : %.4f proc/tick\n", m.Throughput())
	}
}
