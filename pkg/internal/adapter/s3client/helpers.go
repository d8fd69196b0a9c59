package s3client

import "github.com/algoscope/algoscope/pkg/internal/types"

func (c *Client) snapshotLoggers() []types.Logger {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()

	if len(c.loggers) == 0 {
		return nil
	}

	loggers := make([]types.Logger, len(c.loggers))
	copy(loggers, c.loggers)
	return loggers
}

func (c *Client) snapshotSensors() []types.Sensor[string] {
	c.sensorLock.Lock()
	defer c.sensorLock.Unlock()

	if len(c.sensors) == 0 {
		return nil
	}

	sensors := make([]types.Sensor[string], len(c.sensors))
	copy(sensors, c.sensors)
	return sensors
}
