// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time and the state of
// one round-robin run: the ready queue, the set of already-admitted process
// IDs, and the results produced so far. All state is local to a single run,
// so separate Simulators may run concurrently without coordination.
type Simulator struct {
	// Clock is the logical time in ticks. It is seeded at the minimum
	// arrival time and only ever advances by dispatched quantum amounts.
	Clock uint32
	// TimeSlice is the quantum: the maximum number of ticks a process may
	// occupy the CPU before it is preempted.
	TimeSlice uint32

	processes []Process
	readyQ    *ReadyQueue
	arrived   map[uint32]struct{}
	results   []ProcessResult
	trace     []DispatchRecord
	done      bool
}

// NewSimulator validates the input contract and prepares a run. It returns
// ErrInvalidTimeSlice for a zero quantum and ErrDuplicateID when two
// processes share an ID. An empty process list is valid and yields an empty
// result set.
func NewSimulator(processes []Process, timeSlice uint32) (*Simulator, error) {
	if timeSlice == 0 {
		return nil, ErrInvalidTimeSlice
	}
	seen := make(map[uint32]struct{}, len(processes))
	for _, p := range processes {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	// Copy the input so callers mutating their slice mid-run cannot skew
	// the admission scan.
	owned := make([]Process, len(processes))
	copy(owned, processes)

	return &Simulator{
		TimeSlice: timeSlice,
		processes: owned,
		readyQ:    &ReadyQueue{},
		arrived:   make(map[uint32]struct{}, len(processes)),
		results:   make([]ProcessResult, 0, len(processes)),
	}, nil
}

// Run drives the simulation to completion and returns one ProcessResult per
// input process, in completion order. Calling Run a second time returns the
// already-computed results.
func (s *Simulator) Run() []ProcessResult {
	if s.done {
		return s.results
	}
	s.done = true

	if len(s.processes) == 0 {
		logrus.Info("no processes to schedule")
		return s.results
	}

	// The first dispatch happens at the earliest arrival; the CPU is never
	// modeled as busy before any work exists.
	s.Clock = minArrivalTime(s.processes)
	logrus.Infof("[tick %07d] starting round-robin run, %d processes, time slice %d",
		s.Clock, len(s.processes), s.TimeSlice)

	s.checkArrivals()

	for {
		current, ok := s.readyQ.Dequeue()
		if !ok {
			// The queue drained but input may hold processes that have not
			// arrived yet. Jump the clock across the idle gap so every
			// process gets exactly one result.
			if !s.advanceToNextArrival() {
				break
			}
			continue
		}

		elapsed := min(current.Remaining, s.TimeSlice)
		current.Remaining -= elapsed
		start := s.Clock
		s.Clock += elapsed
		s.trace = append(s.trace, DispatchRecord{
			ProcessID: current.Process.ID,
			Start:     start,
			End:       s.Clock,
			Remaining: current.Remaining,
		})
		logrus.Debugf("[tick %07d] dispatched P%d for %d ticks, %d remaining",
			s.Clock, current.Process.ID, elapsed, current.Remaining)

		// Admission runs strictly after the clock advance: a process that
		// arrives during this quantum becomes eligible for the next
		// dispatch and queues ahead of the preempted entry.
		s.checkArrivals()

		if current.Remaining > 0 {
			s.readyQ.Enqueue(current)
			continue
		}
		s.results = append(s.results, NewProcessResult(current.Process, s.Clock))
		logrus.Debugf("[tick %07d] P%d completed", s.Clock, current.Process.ID)
	}

	logrus.Infof("[tick %07d] run complete, %d processes finished", s.Clock, len(s.results))
	return s.results
}

// Trace returns the dispatch records accumulated by Run, one per quantum the
// CPU was occupied, in dispatch order.
func (s *Simulator) Trace() []DispatchRecord {
	return s.trace
}

// checkArrivals scans the input for processes whose arrival time has been
// reached and admits each exactly once, paired with its full burst time.
// The scan is stable: processes with equal arrival times are admitted in
// input order.
func (s *Simulator) checkArrivals() {
	for _, p := range s.processes {
		if p.ArrivalTime > s.Clock {
			continue
		}
		if _, ok := s.arrived[p.ID]; ok {
			continue
		}
		s.readyQ.Enqueue(ScheduledEntry{Process: p, Remaining: p.BurstTime})
		s.arrived[p.ID] = struct{}{}
		logrus.Debugf("[tick %07d] admitted %v", s.Clock, p)
	}
}

// advanceToNextArrival moves the clock to the earliest arrival among
// processes that have not been admitted yet, then admits them. It returns
// false when every process has already arrived.
func (s *Simulator) advanceToNextArrival() bool {
	next := uint32(0)
	found := false
	for _, p := range s.processes {
		if _, ok := s.arrived[p.ID]; ok {
			continue
		}
		if !found || p.ArrivalTime < next {
			next = p.ArrivalTime
			found = true
		}
	}
	if !found {
		return false
	}
	logrus.Debugf("[tick %07d] CPU idle until tick %d", s.Clock, next)
	s.Clock = next
	s.checkArrivals()
	return true
}

// Execute runs the round-robin algorithm over processes with the given time
// slice and returns one result per process. This is the package's primary
// entry point; use NewSimulator directly when the dispatch trace is needed.
func Execute(processes []Process, timeSlice uint32) ([]ProcessResult, error) {
	s, err := NewSimulator(processes, timeSlice)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

func minArrivalTime(processes []Process) uint32 {
	lowest := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		if p.ArrivalTime < lowest {
			lowest = p.ArrivalTime
		}
	}
	return lowest
}
