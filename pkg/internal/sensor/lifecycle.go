package sensor

import "github.com/algoscope/algoscope/pkg/internal/types"

// RegisterOnStart registers callbacks to be invoked when a monitored
// component begins its work.
func (s *Sensor[T]) RegisterOnStart(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnStart = append(s.OnStart, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnStart",
		"component", s.componentMetadata,
		"event", "RegisterOnStart",
		"callbacks", len(callback),
	)
}

// InvokeOnStart invokes registered start callbacks.
func (s *Sensor[T]) InvokeOnStart(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnStart) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

// RegisterOnComplete registers callbacks to be invoked when a monitored
// component finishes successfully.
func (s *Sensor[T]) RegisterOnComplete(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnComplete = append(s.OnComplete, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnComplete",
		"component", s.componentMetadata,
		"event", "RegisterOnComplete",
		"callbacks", len(callback),
	)
}

// InvokeOnComplete invokes registered completion callbacks.
func (s *Sensor[T]) InvokeOnComplete(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnComplete) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

// RegisterOnCancel registers callbacks to be invoked when a monitored
// operation is cancelled mid-flight.
func (s *Sensor[T]) RegisterOnCancel(callback ...func(types.ComponentMetadata, T)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnCancel = append(s.OnCancel, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnCancel",
		"component", s.componentMetadata,
		"event", "RegisterOnCancel",
		"callbacks", len(callback),
	)
}

// InvokeOnCancel invokes registered cancellation callbacks.
func (s *Sensor[T]) InvokeOnCancel(c types.ComponentMetadata, elem T) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCancel) {
		if cb == nil {
			continue
		}
		cb(c, elem)
	}
}

// RegisterOnElementProcessed registers callbacks to be invoked for each
// element a monitored component produces.
func (s *Sensor[T]) RegisterOnElementProcessed(callback ...func(types.ComponentMetadata, T)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnElementProcessed = append(s.OnElementProcessed, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnElementProcessed",
		"component", s.componentMetadata,
		"event", "RegisterOnElementProcessed",
		"callbacks", len(callback),
	)
}

// InvokeOnElementProcessed invokes registered element callbacks.
func (s *Sensor[T]) InvokeOnElementProcessed(c types.ComponentMetadata, elem T) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnElementProcessed) {
		if cb == nil {
			continue
		}
		cb(c, elem)
	}
}

// RegisterOnError registers callbacks to be invoked when a monitored
// component reports an error.
func (s *Sensor[T]) RegisterOnError(callback ...func(types.ComponentMetadata, error, T)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnError = append(s.OnError, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnError",
		"component", s.componentMetadata,
		"event", "RegisterOnError",
		"callbacks", len(callback),
	)
}

// InvokeOnError invokes registered error callbacks.
func (s *Sensor[T]) InvokeOnError(c types.ComponentMetadata, err error, elem T) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnError) {
		if cb == nil {
			continue
		}
		cb(c, err, elem)
	}
}
