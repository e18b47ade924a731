// Implements the ReadyQueue, which holds all admitted processes waiting for
// their next turn on the CPU. Entries are enqueued on admission and
// re-enqueued at the tail when preempted at a quantum boundary.

package sim

import (
	"fmt"
	"strings"
)

// ScheduledEntry pairs a process with the burst time it still owes. Entries
// are stored by value so the Process itself stays immutable; only the
// Remaining field is rewritten between dispatches.
type ScheduledEntry struct {
	Process   Process
	Remaining uint32
}

// ReadyQueue is the FIFO cyclic queue at the heart of round-robin: insertion
// order is preserved, except that a dispatched-but-unfinished entry rejoins
// at the back.
type ReadyQueue struct {
	entries []ScheduledEntry
}

// Enqueue adds an entry to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(e ScheduledEntry) {
	rq.entries = append(rq.entries, e)
}

// Dequeue removes and returns the entry at the front of the queue.
// The second return value is false if the queue is empty.
func (rq *ReadyQueue) Dequeue() (ScheduledEntry, bool) {
	if len(rq.entries) == 0 {
		return ScheduledEntry{}, false
	}
	front := rq.entries[0]
	rq.entries = rq.entries[1:]
	return front, true
}

// Peek returns the front entry without removing it.
// The second return value is false if the queue is empty.
func (rq *ReadyQueue) Peek() (ScheduledEntry, bool) {
	if len(rq.entries) == 0 {
		return ScheduledEntry{}, false
	}
	return rq.entries[0], true
}

// Len returns the number of entries in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.entries)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range rq.entries {
		sb.WriteString(fmt.Sprintf("P%d:%d", e.Process.ID, e.Remaining))
		if i < len(rq.entries)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
