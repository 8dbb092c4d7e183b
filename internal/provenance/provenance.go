// Package provenance captures a snapshot of the host that ran a diagnostic
// session: which CPU, how much memory, which OS.
package provenance

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot is the host state at the moment a session was assembled.
type Snapshot struct {
	CPUModel    string
	CPUCores    int
	CPUMhz      float64
	MemoryTotal uint64
	MemoryUsed  uint64
	OS          string
	Platform    string
	Hostname    string
}

// Capture gathers the current host snapshot. It never fails outright; any
// individual gopsutil call that errors just leaves its fields zero, since a
// missing provenance detail should never block an analysis session from
// completing.
func Capture() Snapshot {
	var snap Snapshot
	snap.CPUCores = runtime.NumCPU()

	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		snap.CPUModel = info[0].ModelName
		snap.CPUMhz = info[0].Mhz
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryTotal = vm.Total
		snap.MemoryUsed = vm.Used
	}

	if hi, err := host.Info(); err == nil {
		snap.OS = hi.OS
		snap.Platform = hi.Platform
		snap.Hostname = hi.Hostname
	}

	return snap
}
