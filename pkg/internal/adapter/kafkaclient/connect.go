package kafkaclient

import "github.com/algoscope/algoscope/pkg/internal/types"

// ConnectSensor attaches sensors to observe produce events.
func (p *Publisher) ConnectSensor(sensors ...types.Sensor[types.BenchResult]) {
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

	p.sensorLock.Lock()
	p.sensors = append(p.sensors, sensors...)
	p.sensorLock.Unlock()

	for _, s := range sensors {
		p.NotifyLoggers(types.DebugLevel, "ConnectSensor",
			"component", p.GetComponentMetadata(),
			"event", "ConnectSensor",
			"target", s.GetComponentMetadata(),
		)
	}
}

// ConnectLogger attaches loggers for publish events.
func (p *Publisher) ConnectLogger(loggers ...types.Logger) {
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

	p.loggersLock.Lock()
	p.loggers = append(p.loggers, loggers...)
	total := len(p.loggers)
	p.loggersLock.Unlock()

	p.NotifyLoggers(types.InfoLevel, "ConnectLogger",
		"component", p.GetComponentMetadata(),
		"event", "ConnectLogger",
		"total_loggers", total,
	)
}
