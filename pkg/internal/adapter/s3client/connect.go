package s3client

import "github.com/algoscope/algoscope/pkg/internal/types"

// ConnectSensor attaches sensors to observe upload events.
func (c *Client) ConnectSensor(sensors ...types.Sensor[string]) {
	if len(sensors) == 0 {
		return
	}

	n := 0
	for _, s := range sensors {
		if s != nil {
			sensors[n] = s
			n++
		}
	}
	if n == 0 {
		return
	}
	sensors = sensors[:n]

	c.sensorLock.Lock()
	c.sensors = append(c.sensors, sensors...)
	c.sensorLock.Unlock()

	for _, s := range sensors {
		c.NotifyLoggers(types.DebugLevel, "ConnectSensor",
			"component", c.GetComponentMetadata(),
			"event", "ConnectSensor",
			"target", s.GetComponentMetadata(),
		)
	}
}

// ConnectLogger attaches loggers for upload events.
func (c *Client) ConnectLogger(loggers ...types.Logger) {
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

	c.loggersLock.Lock()
	c.loggers = append(c.loggers, loggers...)
	total := len(c.loggers)
	c.loggersLock.Unlock()

	c.NotifyLoggers(types.InfoLevel, "ConnectLogger",
		"component", c.GetComponentMetadata(),
		"event", "ConnectLogger",
		"total_loggers", total,
	)
}
