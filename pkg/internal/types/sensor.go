package types

import "time"

type Sensor[T any] interface {
	// Generic lifecycle hooks shared by every monitored component.

	// InvokeOnStart triggers all registered callbacks at the start of a process. This allows for initialization
	// actions or logging to be performed right as the process begins.
	InvokeOnStart(cm ComponentMetadata)

	// InvokeOnComplete triggers all registered callbacks upon the completion of a process. This function
	// is called when a monitored process successfully completes, facilitating downstream activities or cleanup.
	InvokeOnComplete(ComponentMetadata)

	// InvokeOnCancel triggers all registered callbacks associated with the cancellation of a process.
	InvokeOnCancel(cm ComponentMetadata, elem T)

	// InvokeOnElementProcessed triggers callbacks when an element has been processed. This is particularly
	// useful for real-time monitoring and processing feedback.
	InvokeOnElementProcessed(cm ComponentMetadata, elem T)

	// InvokeOnError triggers the registered error handling callbacks. This function is called when an error
	// occurs during the monitored processes, allowing for immediate and custom error handling strategies.
	InvokeOnError(cm ComponentMetadata, err error, elem T)

	RegisterOnStart(...func(cm ComponentMetadata))
	RegisterOnComplete(...func(cm ComponentMetadata))
	RegisterOnCancel(...func(cm ComponentMetadata, elem T))
	RegisterOnElementProcessed(...func(cm ComponentMetadata, elem T))
	RegisterOnError(...func(cm ComponentMetadata, err error, elem T))

	// Benchmark runner hooks
	RegisterOnBenchCaseStart(...func(ComponentMetadata, string /*category*/, string /*algorithm*/, int /*size*/, string /*shape*/))
	RegisterOnBenchCaseSkip(...func(ComponentMetadata, string /*algorithm*/, int /*size*/, string /*reason*/))
	RegisterOnBenchSuiteComplete(...func(ComponentMetadata, int /*cases*/, time.Duration /*elapsed*/))

	InvokeOnBenchCaseStart(ComponentMetadata, string, string, int, string)
	InvokeOnBenchCaseSkip(ComponentMetadata, string, int, string)
	InvokeOnBenchSuiteComplete(ComponentMetadata, int, time.Duration)

	// Chart renderer hooks
	RegisterOnChartRenderStart(...func(ComponentMetadata, string /*chart*/))
	RegisterOnChartSaved(...func(ComponentMetadata, string /*chart*/, string /*path*/, int64 /*bytes*/))
	RegisterOnChartRenderError(...func(ComponentMetadata, string /*chart*/, error))

	InvokeOnChartRenderStart(ComponentMetadata, string)
	InvokeOnChartSaved(ComponentMetadata, string, string, int64)
	InvokeOnChartRenderError(ComponentMetadata, string, error)

	// Archive writer hooks
	RegisterOnArchiveWriteStart(...func(ComponentMetadata, string /*dir*/, string /*format*/, string /*compression*/))
	RegisterOnArchiveFlush(...func(ComponentMetadata, int /*records*/, int /*bytes*/, string /*compression*/))
	RegisterOnArchiveWriteStop(...func(ComponentMetadata))

	InvokeOnArchiveWriteStart(ComponentMetadata, string, string, string)
	InvokeOnArchiveFlush(ComponentMetadata, int, int, string)
	InvokeOnArchiveWriteStop(ComponentMetadata)

	// S3 upload hooks
	RegisterOnS3PutAttempt(...func(ComponentMetadata, string /*bucket*/, string /*key*/, int /*bytes*/))
	RegisterOnS3PutSuccess(...func(ComponentMetadata, string /*bucket*/, string /*key*/, int /*bytes*/, time.Duration /*dur*/))
	RegisterOnS3PutError(...func(ComponentMetadata, string /*bucket*/, string /*key*/, error))

	InvokeOnS3PutAttempt(ComponentMetadata, string, string, int)
	InvokeOnS3PutSuccess(ComponentMetadata, string, string, int, time.Duration)
	InvokeOnS3PutError(ComponentMetadata, string, string, error)

	// Kafka producer hooks
	RegisterOnKafkaWriterStart(...func(ComponentMetadata, string /*topic*/, string /*format*/))
	RegisterOnKafkaWriterStop(...func(ComponentMetadata))
	RegisterOnKafkaProduceAttempt(...func(ComponentMetadata, string /*topic*/, int /*keyBytes*/, int /*valBytes*/))
	RegisterOnKafkaProduceSuccess(...func(ComponentMetadata, string /*topic*/, int /*records*/, time.Duration /*dur*/))
	RegisterOnKafkaProduceError(...func(ComponentMetadata, string /*topic*/, error))

	InvokeOnKafkaWriterStart(ComponentMetadata, string, string)
	InvokeOnKafkaWriterStop(ComponentMetadata)
	InvokeOnKafkaProduceAttempt(ComponentMetadata, string, int, int)
	InvokeOnKafkaProduceSuccess(ComponentMetadata, string, int, time.Duration)
	InvokeOnKafkaProduceError(ComponentMetadata, string, error)

	ConnectLogger(...Logger)
	ConnectMeter(meter ...Meter[T])
	GetMeters() []Meter[T]

	// GetComponentMetadata retrieves metadata about the Sensor, including identifiers like name and ID,
	// useful for logging and monitoring purposes.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata sets the metadata for the Sensor, such as its name and ID.
	SetComponentMetadata(name string, id string)

	// NotifyLoggers sends a formatted log message to all attached loggers at a specified log level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
