// Package report renders benchmark results as box-drawing console tables
// with speedup and growth analysis, the console descendant of the chart
// narrative. Output goes to any io.Writer; the default is stdout.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

// Writer renders benchmark reports onto an io.Writer.
type Writer struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	out      io.Writer
	showHost bool
	outLock  sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewWriter creates a report writer targeting stdout until SetOutput
// redirects it.
func NewWriter(options ...types.Option[types.ReportWriter]) types.ReportWriter {
	w := &Writer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "REPORT_WRITER",
		},
		out: os.Stdout,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}

	return w
}

func (r *Writer) output() io.Writer {
	r.outLock.Lock()
	defer r.outLock.Unlock()
	return r.out
}

func (r *Writer) hostInfoEnabled() bool {
	r.outLock.Lock()
	defer r.outLock.Unlock()
	return r.showHost
}

// stickyWriter keeps the first write error and drops output after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
