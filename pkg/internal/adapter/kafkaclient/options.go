package kafkaclient

import "github.com/algoscope/algoscope/pkg/internal/types"

// WithLogger creates an option to add a logger to a Publisher.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Publisher for logging.
//
// Returns:
//
//	A function conforming to types.KafkaClientOption that, when called with a Publisher component,
//	connects the specified logger(s) to the Publisher.
func WithLogger(logger ...types.Logger) types.KafkaClientOption {
	return func(p types.KafkaClientAdapter) {
		p.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Publisher.
//
// Parameters:
//   - sensor: One or more sensor instances that observe produce events.
//
// Returns:
//
//	A function conforming to types.KafkaClientOption that, when called with a Publisher component,
//	connects the specified sensor(s) to the Publisher.
func WithSensor(sensor ...types.Sensor[types.BenchResult]) types.KafkaClientOption {
	return func(p types.KafkaClientAdapter) {
		p.ConnectSensor(sensor...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a Publisher.
//
// Parameters:
//   - name: The name to set for the Publisher component, used for identification and logging.
//   - id: The unique identifier to set for the Publisher component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.KafkaClientOption, which when called with a Publisher component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata(name string, id string) types.KafkaClientOption {
	return func(p types.KafkaClientAdapter) {
		p.SetComponentMetadata(name, id)
	}
}

// ---------- Publisher wiring ----------

// WithKafkaClientDeps injects brokers, an optional producer handle and
// the security bundle.
// args: nil Producer means the adapter constructs its own writer
func WithKafkaClientDeps(deps types.KafkaClientDeps) types.KafkaClientOption {
	return func(p types.KafkaClientAdapter) { p.SetKafkaClientDeps(deps) }
}

// WithWriterConfig sets topic, key template and delivery semantics.
// args: fields left zero keep their defaults
func WithWriterConfig(cfg types.KafkaWriterConfig) types.KafkaClientOption {
	return func(p types.KafkaClientAdapter) { p.SetWriterConfig(cfg) }
}
