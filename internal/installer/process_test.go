package installer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunningProcesses_Unknown returns nothing for a name no process uses.
func TestRunningProcesses_Unknown(t *testing.T) {
	t.Parallel()

	pids, err := runningProcesses("jrdap-not-running")
	require.NoError(t, err)
	require.Empty(t, pids)
}
