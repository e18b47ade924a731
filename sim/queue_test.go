package sim

import (
	"testing"
)

func TestReadyQueue_DequeueEmpty_ReturnsFalse(t *testing.T) {
	// GIVEN an empty queue
	rq := &ReadyQueue{}

	// WHEN Dequeue() is called
	_, ok := rq.Dequeue()

	// THEN it reports no entry
	if ok {
		t.Error("Dequeue on empty queue: got ok=true, want false")
	}
}

func TestReadyQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with entries for P1, P2, P3
	rq := &ReadyQueue{}
	for _, id := range []uint32{1, 2, 3} {
		rq.Enqueue(ScheduledEntry{Process: Process{ID: id, BurstTime: 5}, Remaining: 5})
	}

	// WHEN all entries are dequeued
	got := make([]uint32, 0, 3)
	for rq.Len() > 0 {
		e, ok := rq.Dequeue()
		if !ok {
			t.Fatal("Dequeue: got ok=false with non-zero Len")
		}
		got = append(got, e.Process.ID)
	}

	// THEN insertion order is preserved
	want := []uint32{1, 2, 3}
	for i, id := range got {
		if id != want[i] {
			t.Errorf("FIFO order[%d]: got P%d, want P%d", i, id, want[i])
		}
	}
}

func TestReadyQueue_ReEnqueueGoesToTail(t *testing.T) {
	// GIVEN a queue with entries for P1, P2
	rq := &ReadyQueue{}
	rq.Enqueue(ScheduledEntry{Process: Process{ID: 1}, Remaining: 6})
	rq.Enqueue(ScheduledEntry{Process: Process{ID: 2}, Remaining: 4})

	// WHEN the front entry is dispatched and re-enqueued with reduced time
	e, _ := rq.Dequeue()
	e.Remaining -= 3
	rq.Enqueue(e)

	// THEN P2 is now at the front and P1 is at the back with the new remaining
	front, _ := rq.Peek()
	if front.Process.ID != 2 {
		t.Errorf("front after re-enqueue: got P%d, want P2", front.Process.ID)
	}
	rq.Dequeue()
	back, _ := rq.Dequeue()
	if back.Process.ID != 1 || back.Remaining != 3 {
		t.Errorf("re-enqueued entry: got P%d remaining=%d, want P1 remaining=3",
			back.Process.ID, back.Remaining)
	}
}

func TestReadyQueue_EntriesStoredByValue(t *testing.T) {
	// GIVEN an entry enqueued from a local variable
	rq := &ReadyQueue{}
	e := ScheduledEntry{Process: Process{ID: 7}, Remaining: 10}
	rq.Enqueue(e)

	// WHEN the local variable is mutated after enqueueing
	e.Remaining = 0

	// THEN the queued entry is unaffected
	front, _ := rq.Peek()
	if front.Remaining != 10 {
		t.Errorf("queued entry aliased caller variable: got remaining=%d, want 10", front.Remaining)
	}
}
