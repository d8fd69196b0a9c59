package s3client

import "github.com/algoscope/algoscope/pkg/internal/types"

// WithLogger creates an option to add a logger to a Client.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Client for logging.
//
// Returns:
//
//	A function conforming to types.S3ClientOption that, when called with a Client component,
//	connects the specified logger(s) to the Client.
func WithLogger(logger ...types.Logger) types.S3ClientOption {
	return func(c types.S3ClientAdapter) {
		c.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Client.
//
// Parameters:
//   - sensor: One or more sensor instances that observe upload events.
//
// Returns:
//
//	A function conforming to types.S3ClientOption that, when called with a Client component,
//	connects the specified sensor(s) to the Client.
func WithSensor(sensor ...types.Sensor[string]) types.S3ClientOption {
	return func(c types.S3ClientAdapter) {
		c.ConnectSensor(sensor...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a Client.
//
// Parameters:
//   - name: The name to set for the Client component, used for identification and logging.
//   - id: The unique identifier to set for the Client component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.S3ClientOption, which when called with a Client component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata(name string, id string) types.S3ClientOption {
	return func(c types.S3ClientAdapter) {
		c.SetComponentMetadata(name, id)
	}
}

// ---------- Client wiring ----------

// WithS3ClientDeps injects the AWS client and destination bucket.
// args: constructed *s3.Client plus bucket name
func WithS3ClientDeps(deps types.S3ClientDeps) types.S3ClientOption {
	return func(c types.S3ClientAdapter) { c.SetS3ClientDeps(deps) }
}

// WithUploadConfig sets key layout, encryption and content-type fields.
// args: fields left zero keep their defaults
func WithUploadConfig(cfg types.S3UploadConfig) types.S3ClientOption {
	return func(c types.S3ClientAdapter) { c.SetUploadConfig(cfg) }
}
