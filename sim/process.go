// Defines the Process and ProcessResult types that model a single unit of
// work in the simulation. A Process is immutable once created; everything
// the engine computes about it lands in a ProcessResult.

package sim

import "fmt"

// Process represents a process to be executed by the simulated CPU.
// All times are logical ticks, not wall time.
type Process struct {
	ID          uint32 `json:"process_id" yaml:"id"`             // Unique identifier, used to distinguish processes
	ArrivalTime uint32 `json:"arrival_time" yaml:"arrival_time"` // Tick at which the process becomes eligible to run
	BurstTime   uint32 `json:"burst_time" yaml:"burst_time"`     // Total CPU time required to complete execution
}

func (p Process) String() string {
	return fmt.Sprintf("P%d(arr=%d burst=%d)", p.ID, p.ArrivalTime, p.BurstTime)
}

// ProcessResult captures the outcome of one process execution. It embeds the
// original Process so callers can report identity, arrival and burst next to
// the computed times without a join.
type ProcessResult struct {
	Process `yaml:",inline"`

	CompletionTime uint32 `json:"completion_time" yaml:"completion_time"` // Tick at which the process finished
	TurnaroundTime uint32 `json:"turnaround_time" yaml:"turnaround_time"` // CompletionTime - ArrivalTime
	WaitingTime    uint32 `json:"waiting_time" yaml:"waiting_time"`       // TurnaroundTime - BurstTime
}

// NewProcessResult derives the turnaround and waiting times from a process
// and its completion tick. A completion tick earlier than the arrival tick,
// or a turnaround shorter than the burst, means the engine dispatched a
// process it should not have; both underflows panic rather than wrap.
func NewProcessResult(p Process, completionTime uint32) ProcessResult {
	if completionTime < p.ArrivalTime {
		panic(fmt.Sprintf("result for %v: completion tick %d precedes arrival", p, completionTime))
	}
	turnaround := completionTime - p.ArrivalTime
	if turnaround < p.BurstTime {
		panic(fmt.Sprintf("result for %v: turnaround %d shorter than burst", p, turnaround))
	}
	return ProcessResult{
		Process:        p,
		CompletionTime: completionTime,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
	}
}
