package archive

import "github.com/algoscope/algoscope/pkg/internal/types"

func (w *Writer) snapshotLoggers() []types.Logger {
	w.loggersLock.Lock()
	defer w.loggersLock.Unlock()
	if len(w.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(w.loggers))
	copy(out, w.loggers)
	return out
}

func (w *Writer) snapshotSensors() []types.Sensor[types.BenchResult] {
	w.sensorLock.Lock()
	defer w.sensorLock.Unlock()
	if len(w.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor[types.BenchResult], len(w.sensors))
	copy(out, w.sensors)
	return out
}
