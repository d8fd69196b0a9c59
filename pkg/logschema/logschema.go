package logschema

// Log schema constants for Algoscope structured logs.
const (
	SchemaID    = "algoscope.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldChart     = "chart"
	FieldAlgorithm = "algorithm"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
