// Console rendering of run output: the classic fixed-width results table,
// a Gantt chart of the dispatch trace, and a tabular metrics summary.

package sim

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// tableCellWidth is the column width of the plain results table.
const tableCellWidth = 17

var tableHeader = []string{
	"Process ID",
	"Arrival Time",
	"Burst Time",
	"Completion Time",
	"Turnaround Time",
	"Waiting Time",
}

// SortByArrival orders results by arrival time, ascending. The sort is
// stable, so results with equal arrival times keep their relative order and
// no field values change.
func SortByArrival(results []ProcessResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ArrivalTime < results[j].ArrivalTime
	})
}

// WriteTable renders results as a left-aligned table of 17-character
// columns, one row per process, sorted by arrival time. The input slice is
// not modified.
func WriteTable(w io.Writer, results []ProcessResult) error {
	sorted := make([]ProcessResult, len(results))
	copy(sorted, results)
	SortByArrival(sorted)

	row := make([]string, 0, len(tableHeader))
	for _, h := range tableHeader {
		row = append(row, pad(h))
	}
	if _, err := fmt.Fprintln(w, strings.Join(row, "")); err != nil {
		return err
	}
	for _, r := range sorted {
		cells := []uint32{
			r.ID, r.ArrivalTime, r.BurstTime,
			r.CompletionTime, r.TurnaroundTime, r.WaitingTime,
		}
		row = row[:0]
		for _, c := range cells {
			row = append(row, pad(strconv.FormatUint(uint64(c), 10)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", tableCellWidth, s)
}

// WriteGantt renders the dispatch trace as a one-line Gantt chart followed
// by the tick boundaries of each quantum. Cells share one width, sized from
// the widest process label in the trace.
func WriteGantt(w io.Writer, trace []DispatchRecord) {
	if len(trace) == 0 {
		return
	}
	cell := 8
	for _, d := range trace {
		if n := len(fmt.Sprintf("P%d", d.ProcessID)) + 2; n > cell {
			cell = n
		}
	}
	fmt.Fprintln(w, "Gantt schedule")
	fmt.Fprint(w, "|")
	for _, d := range trace {
		pid := fmt.Sprintf("P%d", d.ProcessID)
		left := (cell - len(pid)) / 2
		right := cell - len(pid) - left
		fmt.Fprint(w, strings.Repeat(" ", left), pid, strings.Repeat(" ", right), "|")
	}
	fmt.Fprintln(w)
	for i, d := range trace {
		fmt.Fprint(w, d.Start, "\t")
		if i == len(trace)-1 {
			fmt.Fprint(w, d.End)
		}
	}
	fmt.Fprintf(w, "\n\n")
}

// WriteSummary renders the per-process results plus the aggregate averages
// as a bordered table.
func WriteSummary(w io.Writer, results []ProcessResult, m *Metrics) {
	sorted := make([]ProcessResult, len(results))
	copy(sorted, results)
	SortByArrival(sorted)

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.ArrivalTime), 10),
			strconv.FormatUint(uint64(r.BurstTime), 10),
			strconv.FormatUint(uint64(r.CompletionTime), 10),
			strconv.FormatUint(uint64(r.TurnaroundTime), 10),
			strconv.FormatUint(uint64(r.WaitingTime), 10),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround()),
		fmt.Sprintf("Average\n%.2f", m.AvgWaiting())})
	table.Render()
}
