package sensor

import "github.com/algoscope/algoscope/pkg/internal/types"

func (s *Sensor[T]) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()
	return loggers
}

// NotifyLoggers sends a structured message to all attached loggers.
func (s *Sensor[T]) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := s.snapshotLoggers()
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
