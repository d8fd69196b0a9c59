package report

import "github.com/algoscope/algoscope/pkg/internal/types"

func (r *Writer) snapshotLoggers() []types.Logger {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()

	if len(r.loggers) == 0 {
		return nil
	}

	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	return loggers
}

// NotifyLoggers sends a structured message to all attached loggers.
func (r *Writer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := r.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
