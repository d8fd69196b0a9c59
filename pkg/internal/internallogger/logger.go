package internallogger

import (
	"os"
	"sync"

	"github.com/algoscope/algoscope/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, minimum level and caller skip before the adapter is built.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

type sinkEntry struct {
	core zapcore.Core
	stop func()
}

// ZapLoggerAdapter implements types.Logger on top of zap. A base stdout core
// is always present; additional sinks are teed in and can be removed again.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3 // Default caller depth

	for _, option := range options {
		if option == nil {
			continue
		}
		option(&config, &level, &callerDepth)
	}

	if config.InitialFields == nil {
		config.InitialFields = map[string]interface{}{}
	}
	if _, ok := config.InitialFields[logschema.FieldSchema]; !ok {
		config.InitialFields[logschema.FieldSchema] = logschema.SchemaID
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(level)
	baseCore := zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), atomicLevel)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    baseCore,
		baseFields:  fieldsFromMap(config.InitialFields),
		callerDepth: callerDepth,
		callerOn:    config.Development,
		sinks:       make(map[string]sinkEntry),
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}
