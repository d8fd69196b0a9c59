package chart

import "github.com/algoscope/algoscope/pkg/internal/types"

func (c *Chart) snapshotLoggers() []types.Logger {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()
	if len(c.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(c.loggers))
	copy(out, c.loggers)
	return out
}

func (c *Chart) snapshotSensors() []types.Sensor[string] {
	c.sensorLock.Lock()
	defer c.sensorLock.Unlock()
	if len(c.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor[string], len(c.sensors))
	copy(out, c.sensors)
	return out
}
