package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo_PrintsTableAndPasses(t *testing.T) {
	var sb strings.Builder

	err := RunDemo(&sb)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "Process ID")
	assert.Contains(t, out, "All tests passed")
	// One header line, five process rows, one verdict line.
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 7)
}
