package sensor

import (
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// RegisterOnKafkaWriterStart registers callbacks invoked when the publisher
// opens its writer for a topic.
func (s *Sensor[T]) RegisterOnKafkaWriterStart(callback ...func(types.ComponentMetadata, string, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnKafkaWriterStart = append(s.OnKafkaWriterStart, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnKafkaWriterStart",
		"component", s.componentMetadata,
		"event", "RegisterOnKafkaWriterStart",
		"callbacks", len(callback),
	)
}

// InvokeOnKafkaWriterStart invokes registered writer-start callbacks.
func (s *Sensor[T]) InvokeOnKafkaWriterStart(c types.ComponentMetadata, topic, format string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnKafkaWriterStart) {
		if cb == nil {
			continue
		}
		cb(c, topic, format)
	}
}

// RegisterOnKafkaWriterStop registers callbacks invoked when the publisher
// closes.
func (s *Sensor[T]) RegisterOnKafkaWriterStop(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnKafkaWriterStop = append(s.OnKafkaWriterStop, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnKafkaWriterStop",
		"component", s.componentMetadata,
		"event", "RegisterOnKafkaWriterStop",
		"callbacks", len(callback),
	)
}

// InvokeOnKafkaWriterStop invokes registered writer-stop callbacks.
func (s *Sensor[T]) InvokeOnKafkaWriterStop(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnKafkaWriterStop) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

// RegisterOnKafkaProduceAttempt registers callbacks invoked before each
// message batch is handed to the writer.
func (s *Sensor[T]) RegisterOnKafkaProduceAttempt(callback ...func(types.ComponentMetadata, string, int, int)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnKafkaProduceAttempt = append(s.OnKafkaProduceAttempt, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnKafkaProduceAttempt",
		"component", s.componentMetadata,
		"event", "RegisterOnKafkaProduceAttempt",
		"callbacks", len(callback),
	)
}

// InvokeOnKafkaProduceAttempt invokes registered produce-attempt callbacks.
func (s *Sensor[T]) InvokeOnKafkaProduceAttempt(c types.ComponentMetadata, topic string, keyBytes, valBytes int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnKafkaProduceAttempt) {
		if cb == nil {
			continue
		}
		cb(c, topic, keyBytes, valBytes)
	}
}

// RegisterOnKafkaProduceSuccess registers callbacks invoked after a batch is
// acknowledged.
func (s *Sensor[T]) RegisterOnKafkaProduceSuccess(callback ...func(types.ComponentMetadata, string, int, time.Duration)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnKafkaProduceSuccess = append(s.OnKafkaProduceSuccess, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnKafkaProduceSuccess",
		"component", s.componentMetadata,
		"event", "RegisterOnKafkaProduceSuccess",
		"callbacks", len(callback),
	)
}

// InvokeOnKafkaProduceSuccess invokes registered produce-success callbacks.
func (s *Sensor[T]) InvokeOnKafkaProduceSuccess(c types.ComponentMetadata, topic string, records int, dur time.Duration) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnKafkaProduceSuccess) {
		if cb == nil {
			continue
		}
		cb(c, topic, records, dur)
	}
}

// RegisterOnKafkaProduceError registers callbacks invoked when producing
// fails.
func (s *Sensor[T]) RegisterOnKafkaProduceError(callback ...func(types.ComponentMetadata, string, error)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnKafkaProduceError = append(s.OnKafkaProduceError, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnKafkaProduceError",
		"component", s.componentMetadata,
		"event", "RegisterOnKafkaProduceError",
		"callbacks", len(callback),
	)
}

// InvokeOnKafkaProduceError invokes registered produce-error callbacks.
func (s *Sensor[T]) InvokeOnKafkaProduceError(c types.ComponentMetadata, topic string, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnKafkaProduceError) {
		if cb == nil {
			continue
		}
		cb(c, topic, err)
	}
}

func (s *Sensor[T]) decorateKafkaCallbacks() []types.Option[types.Sensor[T]] {
	var kafkaOptions []types.Option[types.Sensor[T]]
	kafkaOptions = append(kafkaOptions,
		WithOnKafkaProduceSuccessFunc[T](func(c types.ComponentMetadata, topic string, records int, dur time.Duration) {
			if records > 0 {
				s.addMeterCounters(types.MetricKafkaProduceCount, uint64(records))
			}
		}),
		WithOnKafkaProduceErrorFunc[T](func(c types.ComponentMetadata, topic string, err error) {
			s.incrementMeterCounters(types.MetricKafkaProduceErrCount)
			s.incrementMeterCounters(types.MetricTotalErrorCount)
		}),
	)
	return kafkaOptions
}
