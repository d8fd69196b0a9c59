package kafkaclient

import "github.com/algoscope/algoscope/pkg/internal/types"

func (p *Publisher) snapshotLoggers() []types.Logger {
	p.loggersLock.Lock()
	defer p.loggersLock.Unlock()

	if len(p.loggers) == 0 {
		return nil
	}

	loggers := make([]types.Logger, len(p.loggers))
	copy(loggers, p.loggers)
	return loggers
}

func (p *Publisher) snapshotSensors() []types.Sensor[types.BenchResult] {
	p.sensorLock.Lock()
	defer p.sensorLock.Unlock()

	if len(p.sensors) == 0 {
		return nil
	}

	sensors := make([]types.Sensor[types.BenchResult], len(p.sensors))
	copy(sensors, p.sensors)
	return sensors
}
