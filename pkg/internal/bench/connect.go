package bench

import "github.com/algoscope/algoscope/pkg/internal/types"

// ConnectSensor attaches sensors to observe benchmark lifecycle events.
func (r *Runner) ConnectSensor(sensors ...types.Sensor[types.BenchResult]) {
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

	r.sensorLock.Lock()
	r.sensors = append(r.sensors, sensors...)
	r.sensorLock.Unlock()

	for _, s := range sensors {
		r.NotifyLoggers(types.DebugLevel, "ConnectSensor",
			"component", r.GetComponentMetadata(),
			"event", "ConnectSensor",
			"target", s.GetComponentMetadata(),
		)
	}
}

// ConnectLogger attaches loggers for runner events.
func (r *Runner) ConnectLogger(loggers ...types.Logger) {
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
	total := len(r.loggers)
	r.loggersLock.Unlock()

	r.NotifyLoggers(types.InfoLevel, "ConnectLogger",
		"component", r.GetComponentMetadata(),
		"event", "ConnectLogger",
		"total_loggers", total,
	)
}

// ConnectMeter attaches meters. The runner feeds them the planned case
// count at suite start so progress displays can reach completion on their
// own; per-case counter updates arrive through connected sensors.
func (r *Runner) ConnectMeter(meters ...types.Meter[types.BenchResult]) {
	if len(meters) == 0 {
		return
	}

	n := 0
	for _, m := range meters {
		if m != nil {
			meters[n] = m
			n++
		}
	}
	if n == 0 {
		return
	}
	meters = meters[:n]

	r.metersLock.Lock()
	r.meters = append(r.meters, meters...)
	r.metersLock.Unlock()

	for _, m := range meters {
		r.NotifyLoggers(types.DebugLevel, "ConnectMeter",
			"component", r.GetComponentMetadata(),
			"event", "ConnectMeter",
			"target", m.GetComponentMetadata(),
		)
	}
}
