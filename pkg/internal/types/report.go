package types

import "io"

// HostInfo is a snapshot of the machine a suite ran on, collected once per
// report so archived results can be compared across hosts.
type HostInfo struct {
	CPUModel     string  // e.g. "AMD EPYC 7R32"
	LogicalCores int     // Logical CPU count.
	TotalRAMMB   uint64  // Total physical memory in MiB.
	UsedRAMPct   float64 // Used memory percentage at collection time.
	OS           string  // runtime.GOOS
	Arch         string  // runtime.GOARCH
	GoVersion    string  // runtime.Version()
}

// ReportWriter renders benchmark output as console tables and analysis text.
type ReportWriter interface {
	// WriteResults renders a box-drawing table of results grouped by category.
	WriteResults(results []BenchResult) error

	// WriteSpeedupAnalysis prints, per size, the fastest and slowest
	// algorithm and the speedup factor between them.
	WriteSpeedupAnalysis(results []BenchResult) error

	// WriteGrowthTable prints adjacent-size growth ratios for the sample
	// sorting measurements.
	WriteGrowthTable(sample SortingSample) error

	// WriteHostInfo prints a host summary line block.
	WriteHostInfo() error

	SetOutput(w io.Writer)
	SetHostInfo(enabled bool)

	ConnectLogger(...Logger)

	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
