package report

import (
	"io"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a report Writer.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Writer for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.ReportWriter] that, when called with a Writer component,
//	connects the specified logger(s) to the Writer.
func WithLogger(logger ...types.Logger) types.Option[types.ReportWriter] {
	return func(r types.ReportWriter) {
		r.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a report Writer.
//
// Parameters:
//   - name: The name to set for the Writer component, used for identification and logging.
//   - id: The unique identifier to set for the Writer component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.Option[types.ReportWriter], which when called with a Writer component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata(name string, id string) types.Option[types.ReportWriter] {
	return func(r types.ReportWriter) {
		r.SetComponentMetadata(name, id)
	}
}

// WithOutput redirects report output away from stdout.
// args: destination writer
func WithOutput(w io.Writer) types.Option[types.ReportWriter] {
	return func(r types.ReportWriter) { r.SetOutput(w) }
}

// WithHostInfo toggles the host summary block at the top of WriteResults.
// args: true to include CPU/RAM/OS lines
func WithHostInfo(enabled bool) types.Option[types.ReportWriter] {
	return func(r types.ReportWriter) { r.SetHostInfo(enabled) }
}
