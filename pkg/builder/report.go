package builder

import (
	"io"

	"github.com/algoscope/algoscope/pkg/internal/report"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// ReportWriter prints result tables and analysis blocks to a writer.
type ReportWriter = types.ReportWriter

// HostInfo is a snapshot of the machine a suite ran on.
type HostInfo = types.HostInfo

// NewReportWriter creates a new report writer with the provided configuration options.
func NewReportWriter(options ...types.Option[types.ReportWriter]) types.ReportWriter {
	return report.NewWriter(options...)
}

// ReportWriterWithComponentMetadata adds component metadata overrides.
func ReportWriterWithComponentMetadata(name string, id string) types.Option[types.ReportWriter] {
	return report.WithComponentMetadata(name, id)
}

// ReportWriterWithLogger adds one or more loggers to the report writer.
func ReportWriterWithLogger(logger ...types.Logger) types.Option[types.ReportWriter] {
	return report.WithLogger(logger...)
}

// ReportWriterWithOutput directs the rendered tables to w instead of stdout.
func ReportWriterWithOutput(w io.Writer) types.Option[types.ReportWriter] {
	return report.WithOutput(w)
}

// ReportWriterWithHostInfo toggles the host summary block.
func ReportWriterWithHostInfo(enabled bool) types.Option[types.ReportWriter] {
	return report.WithHostInfo(enabled)
}

// CollectHostInfo samples the host CPU, memory and runtime facts once.
func CollectHostInfo() types.HostInfo {
	return report.CollectHostInfo()
}
