package sim

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable_FixedWidthColumns(t *testing.T) {
	results := CanonicalResults()

	var sb strings.Builder
	require.NoError(t, WriteTable(&sb, results))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6, "header plus one row per process")
	for i, line := range lines {
		assert.Len(t, line, 6*tableCellWidth, "line %d width", i)
	}
	assert.True(t, strings.HasPrefix(lines[0], "Process ID"))

	// Rows are sorted by arrival time: P2 (arr=3) comes first.
	assert.Equal(t, []string{"2", "3", "39", "100", "97", "58"}, strings.Fields(lines[1]))
	// P0 (arr=70) comes last.
	assert.Equal(t, []string{"0", "70", "3", "80", "10", "7"}, strings.Fields(lines[5]))
}

func TestWriteTable_DoesNotReorderInput(t *testing.T) {
	results := CanonicalResults()
	firstID := results[0].ID

	var sb strings.Builder
	require.NoError(t, WriteTable(&sb, results))

	assert.Equal(t, firstID, results[0].ID, "WriteTable must not mutate caller slice")
}

func TestSortByArrival_StableAndValuePreserving(t *testing.T) {
	// GIVEN two results tied on arrival time
	a := NewProcessResult(Process{ID: 8, ArrivalTime: 4, BurstTime: 1}, 5)
	b := NewProcessResult(Process{ID: 2, ArrivalTime: 4, BurstTime: 1}, 6)
	c := NewProcessResult(Process{ID: 5, ArrivalTime: 1, BurstTime: 2}, 3)
	results := []ProcessResult{a, b, c}

	SortByArrival(results)

	// THEN the tie keeps input order and no field values change
	assert.Equal(t, []ProcessResult{c, a, b}, results)
}

func TestWriteGantt_CoversTrace(t *testing.T) {
	s, err := NewSimulator([]Process{{ID: 0, ArrivalTime: 0, BurstTime: 5}}, 3)
	require.NoError(t, err)
	s.Run()

	var sb strings.Builder
	WriteGantt(&sb, s.Trace())

	out := sb.String()
	assert.Contains(t, out, "P0")
	assert.Contains(t, out, "5") // final tick boundary
}

func TestWriteGantt_MaxUint32ID_Renders(t *testing.T) {
	// GIVEN a process whose ID label is wider than the default cell
	s, err := NewSimulator([]Process{{ID: math.MaxUint32, ArrivalTime: 0, BurstTime: 2}}, 3)
	require.NoError(t, err)
	s.Run()

	var sb strings.Builder
	WriteGantt(&sb, s.Trace())

	assert.Contains(t, sb.String(), "P4294967295")
}

func TestWriteGantt_CellsShareOneWidth(t *testing.T) {
	// GIVEN a trace mixing odd- and even-length process labels
	s, err := NewSimulator([]Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 3},
		{ID: 10, ArrivalTime: 0, BurstTime: 3},
		{ID: 100, ArrivalTime: 0, BurstTime: 3},
	}, 3)
	require.NoError(t, err)
	s.Run()

	var sb strings.Builder
	WriteGantt(&sb, s.Trace())

	// THEN every chart cell has the same width, so columns line up with
	// the tick boundaries beneath them
	lines := strings.Split(sb.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	cells := strings.Split(strings.Trim(lines[1], "|"), "|")
	require.Len(t, cells, 3)
	for i, c := range cells {
		assert.Len(t, c, len(cells[0]), "cell %d width differs", i)
	}
}

func TestWriteGantt_EmptyTrace_NoOutput(t *testing.T) {
	var sb strings.Builder
	WriteGantt(&sb, nil)
	assert.Empty(t, sb.String())
}

func TestWriteSummary_RendersAverages(t *testing.T) {
	s, err := NewSimulator(CanonicalProcesses(), CanonicalTimeSlice)
	require.NoError(t, err)
	results := s.Run()
	m := BuildMetrics(results, s.Trace())

	var sb strings.Builder
	WriteSummary(&sb, results, m)

	out := sb.String()
	assert.Contains(t, out, "32.40") // average waiting, 162/5
	assert.Contains(t, out, "65.00") // average turnaround, 325/5
}
