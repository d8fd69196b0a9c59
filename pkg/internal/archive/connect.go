package archive

import "github.com/algoscope/algoscope/pkg/internal/types"

// ConnectSensor attaches sensors to observe archive write events.
func (w *Writer) ConnectSensor(sensors ...types.Sensor[types.BenchResult]) {
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

	w.sensorLock.Lock()
	w.sensors = append(w.sensors, sensors...)
	w.sensorLock.Unlock()

	for _, s := range sensors {
		w.NotifyLoggers(types.DebugLevel, "ConnectSensor",
			"component", w.GetComponentMetadata(),
			"event", "ConnectSensor",
			"target", s.GetComponentMetadata(),
		)
	}
}

// ConnectLogger attaches loggers for archive events.
func (w *Writer) ConnectLogger(loggers ...types.Logger) {
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

	w.loggersLock.Lock()
	w.loggers = append(w.loggers, loggers...)
	total := len(w.loggers)
	w.loggersLock.Unlock()

	w.NotifyLoggers(types.InfoLevel, "ConnectLogger",
		"component", w.GetComponentMetadata(),
		"event", "ConnectLogger",
		"total_loggers", total,
	)
}
