package sensor

import (
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// RegisterOnS3PutAttempt registers callbacks invoked before each object PUT.
func (s *Sensor[T]) RegisterOnS3PutAttempt(callback ...func(types.ComponentMetadata, string, string, int)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnS3PutAttempt = append(s.OnS3PutAttempt, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnS3PutAttempt",
		"component", s.componentMetadata,
		"event", "RegisterOnS3PutAttempt",
		"callbacks", len(callback),
	)
}

// InvokeOnS3PutAttempt invokes registered PUT-attempt callbacks.
func (s *Sensor[T]) InvokeOnS3PutAttempt(c types.ComponentMetadata, bucket, key string, bytes int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnS3PutAttempt) {
		if cb == nil {
			continue
		}
		cb(c, bucket, key, bytes)
	}
}

// RegisterOnS3PutSuccess registers callbacks invoked after a successful PUT.
func (s *Sensor[T]) RegisterOnS3PutSuccess(callback ...func(types.ComponentMetadata, string, string, int, time.Duration)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnS3PutSuccess = append(s.OnS3PutSuccess, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnS3PutSuccess",
		"component", s.componentMetadata,
		"event", "RegisterOnS3PutSuccess",
		"callbacks", len(callback),
	)
}

// InvokeOnS3PutSuccess invokes registered PUT-success callbacks.
func (s *Sensor[T]) InvokeOnS3PutSuccess(c types.ComponentMetadata, bucket, key string, bytes int, dur time.Duration) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnS3PutSuccess) {
		if cb == nil {
			continue
		}
		cb(c, bucket, key, bytes, dur)
	}
}

// RegisterOnS3PutError registers callbacks invoked when a PUT fails.
func (s *Sensor[T]) RegisterOnS3PutError(callback ...func(types.ComponentMetadata, string, string, error)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnS3PutError = append(s.OnS3PutError, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnS3PutError",
		"component", s.componentMetadata,
		"event", "RegisterOnS3PutError",
		"callbacks", len(callback),
	)
}

// InvokeOnS3PutError invokes registered PUT-error callbacks.
func (s *Sensor[T]) InvokeOnS3PutError(c types.ComponentMetadata, bucket, key string, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnS3PutError) {
		if cb == nil {
			continue
		}
		cb(c, bucket, key, err)
	}
}

func (s *Sensor[T]) decorateS3Callbacks() []types.Option[types.Sensor[T]] {
	var s3Options []types.Option[types.Sensor[T]]
	s3Options = append(s3Options,
		WithOnS3PutSuccessFunc[T](func(c types.ComponentMetadata, bucket string, key string, bytes int, dur time.Duration) {
			s.incrementMeterCountersAndReportActivity(types.MetricS3PutCount)
		}),
		WithOnS3PutErrorFunc[T](func(c types.ComponentMetadata, bucket string, key string, err error) {
			s.incrementMeterCounters(types.MetricS3PutErrorCount)
			s.incrementMeterCounters(types.MetricTotalErrorCount)
		}),
	)
	return s3Options
}
