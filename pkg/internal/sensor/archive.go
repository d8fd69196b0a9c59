package sensor

import "github.com/algoscope/algoscope/pkg/internal/types"

// RegisterOnArchiveWriteStart registers callbacks invoked when an archive
// writer opens a run directory.
func (s *Sensor[T]) RegisterOnArchiveWriteStart(callback ...func(types.ComponentMetadata, string, string, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnArchiveWriteStart = append(s.OnArchiveWriteStart, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnArchiveWriteStart",
		"component", s.componentMetadata,
		"event", "RegisterOnArchiveWriteStart",
		"callbacks", len(callback),
	)
}

// InvokeOnArchiveWriteStart invokes registered write-start callbacks.
func (s *Sensor[T]) InvokeOnArchiveWriteStart(c types.ComponentMetadata, dir, format, compression string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnArchiveWriteStart) {
		if cb == nil {
			continue
		}
		cb(c, dir, format, compression)
	}
}

// RegisterOnArchiveFlush registers callbacks invoked after each file flush,
// carrying record and byte counts.
func (s *Sensor[T]) RegisterOnArchiveFlush(callback ...func(types.ComponentMetadata, int, int, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnArchiveFlush = append(s.OnArchiveFlush, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnArchiveFlush",
		"component", s.componentMetadata,
		"event", "RegisterOnArchiveFlush",
		"callbacks", len(callback),
	)
}

// InvokeOnArchiveFlush invokes registered flush callbacks.
func (s *Sensor[T]) InvokeOnArchiveFlush(c types.ComponentMetadata, records, bytes int, compression string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnArchiveFlush) {
		if cb == nil {
			continue
		}
		cb(c, records, bytes, compression)
	}
}

// RegisterOnArchiveWriteStop registers callbacks invoked when the writer
// closes out a run.
func (s *Sensor[T]) RegisterOnArchiveWriteStop(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnArchiveWriteStop = append(s.OnArchiveWriteStop, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnArchiveWriteStop",
		"component", s.componentMetadata,
		"event", "RegisterOnArchiveWriteStop",
		"callbacks", len(callback),
	)
}

// InvokeOnArchiveWriteStop invokes registered write-stop callbacks.
func (s *Sensor[T]) InvokeOnArchiveWriteStop(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnArchiveWriteStop) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

func (s *Sensor[T]) decorateArchiveCallbacks() []types.Option[types.Sensor[T]] {
	var archiveOptions []types.Option[types.Sensor[T]]
	archiveOptions = append(archiveOptions,
		WithOnArchiveFlushFunc[T](func(c types.ComponentMetadata, records int, bytes int, compression string) {
			s.incrementMeterCountersAndReportActivity(types.MetricArchiveFlushCount)
			if bytes > 0 {
				s.addMeterCounters(types.MetricArchiveBytesWritten, uint64(bytes))
			}
		}),
		WithOnErrorFunc[T](func(c types.ComponentMetadata, err error, elem T) {
			switch c.Type {
			case "ARCHIVE_WRITER":
				s.incrementMeterCounters(types.MetricArchiveErrorCount)
			}
		}),
	)
	return archiveOptions
}
