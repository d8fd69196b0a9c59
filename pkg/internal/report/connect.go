package report

import "github.com/algoscope/algoscope/pkg/internal/types"

// ConnectLogger attaches loggers for report events.
func (r *Writer) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	r.loggersLock.Lock()
	r.loggers = append(r.loggers, loggers...)
	r.loggersLock.Unlock()
}
