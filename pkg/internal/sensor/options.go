package sensor

import (
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Sensor.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Sensor for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	connects the specified logger(s) to the Sensor.
func WithLogger[T any](logger ...types.Logger) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.ConnectLogger(logger...)
	}
}

// WithMeter creates an option to connect a meter to a Sensor.
//
// Parameters:
//   - meter: One or more meter instances that aggregate the counters the Sensor reports.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	connects the specified meter(s) to the Sensor.
func WithMeter[T any](meter ...types.Meter[T]) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.ConnectMeter(meter...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a Sensor.
//
// Parameters:
//   - name: The name to set for the Sensor component, used for identification and logging.
//   - id: The unique identifier to set for the Sensor component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]], which when called with a Sensor component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata[T any](name string, id string) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.SetComponentMetadata(name, id)
	}
}

// WithOnStartFunc creates an option to register a callback for the OnStart event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnStart event.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnStart event.
func WithOnStartFunc[T any](callback ...func(c types.ComponentMetadata)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.RegisterOnStart(callback...)
	}
}

// WithOnCompleteFunc creates an option to register a callback for the OnComplete event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnComplete event.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnComplete event.
func WithOnCompleteFunc[T any](callback ...func(c types.ComponentMetadata)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.RegisterOnComplete(callback...)
	}
}

// WithOnCancelFunc creates an option to register a callback for the OnCancel event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnCancel event, each accepting the element in flight.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnCancel event.
func WithOnCancelFunc[T any](callback ...func(c types.ComponentMetadata, elem T)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.RegisterOnCancel(callback...)
	}
}

// WithOnElementProcessedFunc creates an option to register a callback for the OnElementProcessed event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnElementProcessed event, each accepting an element of type T.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnElementProcessed event.
func WithOnElementProcessedFunc[T any](callback ...func(c types.ComponentMetadata, elem T)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.RegisterOnElementProcessed(callback...)
	}
}

// WithOnErrorFunc creates an option to register a callback for the OnError event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnError event, each accepting the error and the element in flight.
//
// Returns:
//
//	A function conforming to types.Option[types.Sensor[T]] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnError event.
func WithOnErrorFunc[T any](callback ...func(c types.ComponentMetadata, err error, elem T)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) {
		m.RegisterOnError(callback...)
	}
}

// ---------- Bench runner ----------

// WithOnBenchCaseStartFunc registers callbacks for when a benchmark case starts.
// args: category, algorithm, size, shape
func WithOnBenchCaseStartFunc[T any](callback ...func(types.ComponentMetadata, string, string, int, string)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnBenchCaseStart(callback...) }
}

// WithOnBenchCaseSkipFunc registers callbacks for when the runner skips a case.
// args: algorithm, size, reason
func WithOnBenchCaseSkipFunc[T any](callback ...func(types.ComponentMetadata, string, int, string)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnBenchCaseSkip(callback...) }
}

// WithOnBenchSuiteCompleteFunc registers callbacks for when the whole suite finishes.
// args: cases, elapsed
func WithOnBenchSuiteCompleteFunc[T any](callback ...func(types.ComponentMetadata, int, time.Duration)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnBenchSuiteComplete(callback...) }
}

// ---------- Chart renderer ----------

// WithOnChartRenderStartFunc registers callbacks for when a chart render begins.
// args: chart
func WithOnChartRenderStartFunc[T any](callback ...func(types.ComponentMetadata, string)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnChartRenderStart(callback...) }
}

// WithOnChartSavedFunc registers callbacks after a chart is written to disk.
// args: chart, path, bytes
func WithOnChartSavedFunc[T any](callback ...func(types.ComponentMetadata, string, string, int64)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnChartSaved(callback...) }
}

// WithOnChartRenderErrorFunc registers callbacks when a chart render fails.
// args: chart, err
func WithOnChartRenderErrorFunc[T any](callback ...func(types.ComponentMetadata, string, error)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnChartRenderError(callback...) }
}

// ---------- Archive writer ----------

// WithOnArchiveWriteStartFunc registers callbacks for when the archive writer starts.
// args: dir, format, compression
func WithOnArchiveWriteStartFunc[T any](callback ...func(types.ComponentMetadata, string, string, string)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnArchiveWriteStart(callback...) }
}

// WithOnArchiveFlushFunc registers callbacks when a batch of records is flushed.
// args: records, bytes, compression
func WithOnArchiveFlushFunc[T any](callback ...func(types.ComponentMetadata, int, int, string)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnArchiveFlush(callback...) }
}

// WithOnArchiveWriteStopFunc registers callbacks for when the archive writer stops.
func WithOnArchiveWriteStopFunc[T any](callback ...func(types.ComponentMetadata)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnArchiveWriteStop(callback...) }
}

// ---------- S3 uploads ----------

// WithOnS3PutAttemptFunc registers callbacks right before a PutObject attempt.
// args: bucket, key, bytes
func WithOnS3PutAttemptFunc[T any](callback ...func(types.ComponentMetadata, string, string, int)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnS3PutAttempt(callback...) }
}

// WithOnS3PutSuccessFunc registers callbacks after a successful PutObject.
// args: bucket, key, bytes, duration
func WithOnS3PutSuccessFunc[T any](callback ...func(types.ComponentMetadata, string, string, int, time.Duration)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnS3PutSuccess(callback...) }
}

// WithOnS3PutErrorFunc registers callbacks when PutObject fails.
// args: bucket, key, err
func WithOnS3PutErrorFunc[T any](callback ...func(types.ComponentMetadata, string, string, error)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnS3PutError(callback...) }
}

// ---------- Kafka publisher ----------

// WithOnKafkaWriterStartFunc registers callbacks for when the Kafka writer starts.
// args: topic, format
func WithOnKafkaWriterStartFunc[T any](callback ...func(types.ComponentMetadata, string, string)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnKafkaWriterStart(callback...) }
}

// WithOnKafkaWriterStopFunc registers callbacks for when the Kafka writer stops.
func WithOnKafkaWriterStopFunc[T any](callback ...func(types.ComponentMetadata)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnKafkaWriterStop(callback...) }
}

// WithOnKafkaProduceAttemptFunc registers callbacks right before messages are produced.
// args: topic, keyBytes, valueBytes
func WithOnKafkaProduceAttemptFunc[T any](callback ...func(types.ComponentMetadata, string, int, int)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnKafkaProduceAttempt(callback...) }
}

// WithOnKafkaProduceSuccessFunc registers callbacks after messages are accepted by the broker.
// args: topic, records, duration
func WithOnKafkaProduceSuccessFunc[T any](callback ...func(types.ComponentMetadata, string, int, time.Duration)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnKafkaProduceSuccess(callback...) }
}

// WithOnKafkaProduceErrorFunc registers callbacks when producing fails.
// args: topic, err
func WithOnKafkaProduceErrorFunc[T any](callback ...func(types.ComponentMetadata, string, error)) types.Option[types.Sensor[T]] {
	return func(m types.Sensor[T]) { m.RegisterOnKafkaProduceError(callback...) }
}
