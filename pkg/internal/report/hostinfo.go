package report

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// CollectHostInfo samples the host once. Fields whose source is unavailable
// stay at their zero values; collection never fails the report.
func CollectHostInfo() types.HostInfo {
	info := types.HostInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = strings.TrimSpace(cpuInfo[0].ModelName)
	}
	if cores, err := cpu.Counts(true); err == nil {
		info.LogicalCores = cores
	}
	if memStats, err := mem.VirtualMemory(); err == nil && memStats != nil {
		info.TotalRAMMB = memStats.Total / (1 << 20)
		info.UsedRAMPct = memStats.UsedPercent
	}

	return info
}

// WriteHostInfo prints the host summary block on its own.
func (r *Writer) WriteHostInfo() error {
	s := &stickyWriter{w: r.output()}
	writeHostBlock(s, CollectHostInfo())

	r.NotifyLoggers(types.DebugLevel, "WriteHostInfo",
		"component", r.GetComponentMetadata(),
		"event", "WriteHostInfo",
	)
	return s.err
}

func writeHostBlock(s *stickyWriter, info types.HostInfo) {
	model := info.CPUModel
	if model == "" {
		model = "unknown"
	}
	s.printf("Host Information:\n")
	s.printf("  CPU: %s (%d logical cores)\n", model, info.LogicalCores)
	s.printf("  RAM: %d MiB total, %.1f%% in use\n", info.TotalRAMMB, info.UsedRAMPct)
	s.printf("  OS:  %s/%s, %s\n", info.OS, info.Arch, info.GoVersion)
}
