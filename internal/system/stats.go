package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a snapshot of host and process resource usage.
type Stats struct {
	HostCPUPercent float64
	HostMemUsed    uint64
	HostMemPercent float64
	ProcCPUPercent float64
	ProcRSS        uint64
	NumCPU         int
}

// CollectStats samples host CPU over interval and reads memory figures for
// the host and the current process. Fields that cannot be read stay zero.
func CollectStats(interval time.Duration) (Stats, error) {
	var s Stats

	if n, err := cpu.Counts(true); err == nil {
		s.NumCPU = n
	}
	if pct, err := cpu.Percent(interval, false); err == nil && len(pct) > 0 {
		s.HostCPUPercent = pct[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return s, fmt.Errorf("virtual memory: %w", err)
	}
	s.HostMemUsed = vm.Used
	s.HostMemPercent = vm.UsedPercent

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return s, fmt.Errorf("process: %w", err)
	}
	if mi, err := proc.MemoryInfo(); err == nil {
		s.ProcRSS = mi.RSS
	}
	if pct, err := proc.CPUPercent(); err == nil {
		s.ProcCPUPercent = pct
	}
	return s, nil
}

func (s Stats) String() string {
	return fmt.Sprintf("CPU: %.1f%% (%d ядер) | RAM: %s (%.1f%%) | Процесс: CPU %.1f%%, RSS %s",
		s.HostCPUPercent, s.NumCPU,
		FormatBytes(s.HostMemUsed), s.HostMemPercent,
		s.ProcCPUPercent, FormatBytes(s.ProcRSS))
}

// FormatBytes renders n with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
