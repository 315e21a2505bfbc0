package installer

import (
	"context"
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/gbxyz/jrdap-install/internal/logger"
)

// warnIfRunning logs a warning when a process named like the artifact is
// alive: replacing a running executable can fail with "text file busy".
// It never stops the install.
func (in *Installer) warnIfRunning(ctx context.Context) {
	pids, err := runningProcesses(in.target.Name())
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)
		return
	}

	if len(pids) > 0 {
		logger.WarnKV(ctx, "Artifact is currently running, overwriting it may fail", "pids", pids)
	}
}

// runningProcesses returns the ids of other processes whose executable is name.
func runningProcesses(name string) ([]int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	thisProcessID := os.Getpid()

	var pids []int

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != name {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids, nil
}
