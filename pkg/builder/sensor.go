package builder

import (
	"time"

	"github.com/algoscope/algoscope/pkg/internal/sensor"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// ComponentMetadata identifies a component in logs and sensor callbacks.
type ComponentMetadata = types.ComponentMetadata

// Option configures a component of type T.
type Option[T any] = types.Option[T]

// NewSensor creates a new sensor with the provided configuration options.
func NewSensor[T any](options ...types.Option[types.Sensor[T]]) types.Sensor[T] {
	return sensor.NewSensor[T](options...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata[T any](name string, id string) types.Option[types.Sensor[T]] {
	return sensor.WithComponentMetadata[T](name, id)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger[T any](logger ...types.Logger) types.Option[types.Sensor[T]] {
	return sensor.WithLogger[T](logger...)
}

// SensorWithMeter attaches meters updated by the sensor's counters.
func SensorWithMeter[T any](meter ...types.Meter[T]) types.Option[types.Sensor[T]] {
	return sensor.WithMeter[T](meter...)
}

// SensorWithOnStartFunc registers a callback for the OnStart event.
func SensorWithOnStartFunc[T any](callback ...func(c ComponentMetadata)) types.Option[types.Sensor[T]] {
	return sensor.WithOnStartFunc[T](callback...)
}

// SensorWithOnCompleteFunc registers a callback for the OnComplete event.
func SensorWithOnCompleteFunc[T any](callback ...func(c ComponentMetadata)) types.Option[types.Sensor[T]] {
	return sensor.WithOnCompleteFunc[T](callback...)
}

// SensorWithOnCancelFunc registers a callback for the OnCancel event.
func SensorWithOnCancelFunc[T any](callback ...func(c ComponentMetadata, elem T)) types.Option[types.Sensor[T]] {
	return sensor.WithOnCancelFunc[T](callback...)
}

// SensorWithOnElementProcessedFunc registers a callback for the OnElementProcessed event.
func SensorWithOnElementProcessedFunc[T any](callback ...func(c ComponentMetadata, elem T)) types.Option[types.Sensor[T]] {
	return sensor.WithOnElementProcessedFunc[T](callback...)
}

// SensorWithOnErrorFunc registers a callback for the OnError event.
func SensorWithOnErrorFunc[T any](callback ...func(c ComponentMetadata, err error, elem T)) types.Option[types.Sensor[T]] {
	return sensor.WithOnErrorFunc[T](callback...)
}

// SensorWithOnBenchCaseStartFunc registers a callback for the OnBenchCaseStart event.
func SensorWithOnBenchCaseStartFunc[T any](callback ...func(c ComponentMetadata, category string, algorithm string, size int, shape string)) types.Option[types.Sensor[T]] {
	return sensor.WithOnBenchCaseStartFunc[T](callback...)
}

// SensorWithOnBenchCaseSkipFunc registers a callback for the OnBenchCaseSkip event.
func SensorWithOnBenchCaseSkipFunc[T any](callback ...func(c ComponentMetadata, algorithm string, size int, reason string)) types.Option[types.Sensor[T]] {
	return sensor.WithOnBenchCaseSkipFunc[T](callback...)
}

// SensorWithOnBenchSuiteCompleteFunc registers a callback for the OnBenchSuiteComplete event.
func SensorWithOnBenchSuiteCompleteFunc[T any](callback ...func(c ComponentMetadata, cases int, elapsed time.Duration)) types.Option[types.Sensor[T]] {
	return sensor.WithOnBenchSuiteCompleteFunc[T](callback...)
}

// SensorWithOnChartRenderStartFunc registers a callback for the OnChartRenderStart event.
func SensorWithOnChartRenderStartFunc[T any](callback ...func(c ComponentMetadata, chart string)) types.Option[types.Sensor[T]] {
	return sensor.WithOnChartRenderStartFunc[T](callback...)
}

// SensorWithOnChartSavedFunc registers a callback for the OnChartSaved event.
func SensorWithOnChartSavedFunc[T any](callback ...func(c ComponentMetadata, chart string, path string, bytes int64)) types.Option[types.Sensor[T]] {
	return sensor.WithOnChartSavedFunc[T](callback...)
}

// SensorWithOnChartRenderErrorFunc registers a callback for the OnChartRenderError event.
func SensorWithOnChartRenderErrorFunc[T any](callback ...func(c ComponentMetadata, chart string, err error)) types.Option[types.Sensor[T]] {
	return sensor.WithOnChartRenderErrorFunc[T](callback...)
}

// SensorWithOnArchiveWriteStartFunc registers a callback for the OnArchiveWriteStart event.
func SensorWithOnArchiveWriteStartFunc[T any](callback ...func(c ComponentMetadata, dir string, format string, compression string)) types.Option[types.Sensor[T]] {
	return sensor.WithOnArchiveWriteStartFunc[T](callback...)
}

// SensorWithOnArchiveFlushFunc registers a callback for the OnArchiveFlush event.
func SensorWithOnArchiveFlushFunc[T any](callback ...func(c ComponentMetadata, records int, bytes int, compression string)) types.Option[types.Sensor[T]] {
	return sensor.WithOnArchiveFlushFunc[T](callback...)
}

// SensorWithOnArchiveWriteStopFunc registers a callback for the OnArchiveWriteStop event.
func SensorWithOnArchiveWriteStopFunc[T any](callback ...func(c ComponentMetadata)) types.Option[types.Sensor[T]] {
	return sensor.WithOnArchiveWriteStopFunc[T](callback...)
}

// SensorWithOnS3PutAttemptFunc registers a callback for the OnS3PutAttempt event.
func SensorWithOnS3PutAttemptFunc[T any](callback ...func(c ComponentMetadata, bucket string, key string, bytes int)) types.Option[types.Sensor[T]] {
	return sensor.WithOnS3PutAttemptFunc[T](callback...)
}

// SensorWithOnS3PutSuccessFunc registers a callback for the OnS3PutSuccess event.
func SensorWithOnS3PutSuccessFunc[T any](callback ...func(c ComponentMetadata, bucket string, key string, bytes int, dur time.Duration)) types.Option[types.Sensor[T]] {
	return sensor.WithOnS3PutSuccessFunc[T](callback...)
}

// SensorWithOnS3PutErrorFunc registers a callback for the OnS3PutError event.
func SensorWithOnS3PutErrorFunc[T any](callback ...func(c ComponentMetadata, bucket string, key string, err error)) types.Option[types.Sensor[T]] {
	return sensor.WithOnS3PutErrorFunc[T](callback...)
}

// SensorWithOnKafkaWriterStartFunc registers a callback for the OnKafkaWriterStart event.
func SensorWithOnKafkaWriterStartFunc[T any](callback ...func(c ComponentMetadata, topic string, format string)) types.Option[types.Sensor[T]] {
	return sensor.WithOnKafkaWriterStartFunc[T](callback...)
}

// SensorWithOnKafkaWriterStopFunc registers a callback for the OnKafkaWriterStop event.
func SensorWithOnKafkaWriterStopFunc[T any](callback ...func(c ComponentMetadata)) types.Option[types.Sensor[T]] {
	return sensor.WithOnKafkaWriterStopFunc[T](callback...)
}

// SensorWithOnKafkaProduceAttemptFunc registers a callback for the OnKafkaProduceAttempt event.
func SensorWithOnKafkaProduceAttemptFunc[T any](callback ...func(c ComponentMetadata, topic string, keyBytes int, valueBytes int)) types.Option[types.Sensor[T]] {
	return sensor.WithOnKafkaProduceAttemptFunc[T](callback...)
}

// SensorWithOnKafkaProduceSuccessFunc registers a callback for the OnKafkaProduceSuccess event.
func SensorWithOnKafkaProduceSuccessFunc[T any](callback ...func(c ComponentMetadata, topic string, records int, dur time.Duration)) types.Option[types.Sensor[T]] {
	return sensor.WithOnKafkaProduceSuccessFunc[T](callback...)
}

// SensorWithOnKafkaProduceErrorFunc registers a callback for the OnKafkaProduceError event.
func SensorWithOnKafkaProduceErrorFunc[T any](callback ...func(c ComponentMetadata, topic string, err error)) types.Option[types.Sensor[T]] {
	return sensor.WithOnKafkaProduceErrorFunc[T](callback...)
}
