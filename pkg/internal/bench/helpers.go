package bench

import "github.com/algoscope/algoscope/pkg/internal/types"

func (r *Runner) snapshotLoggers() []types.Logger {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()

	if len(r.loggers) == 0 {
		return nil
	}

	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	return loggers
}

func (r *Runner) snapshotSensors() []types.Sensor[types.BenchResult] {
	r.sensorLock.Lock()
	defer r.sensorLock.Unlock()

	if len(r.sensors) == 0 {
		return nil
	}

	sensors := make([]types.Sensor[types.BenchResult], len(r.sensors))
	copy(sensors, r.sensors)
	return sensors
}

func (r *Runner) snapshotMeters() []types.Meter[types.BenchResult] {
	r.metersLock.Lock()
	defer r.metersLock.Unlock()

	if len(r.meters) == 0 {
		return nil
	}

	meters := make([]types.Meter[types.BenchResult], len(r.meters))
	copy(meters, r.meters)
	return meters
}
