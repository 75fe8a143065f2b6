// Package audit writes a structured trail of every mutation and export the
// registry performs. The trail is operational, not transactional: a failed
// audit write never fails the operation it describes.
package audit

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType identifies what happened to the record set.
type EventType string

const (
	EventRecordCreated   EventType = "record_created"
	EventRecordUpdated   EventType = "record_updated"
	EventRecordDeleted   EventType = "record_deleted"
	EventExportGenerated EventType = "export_generated"
)

// Logger provides structured audit logging backed by Zap.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *Logger

// Init initializes the audit logger. Called once at startup.
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	l := &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
	defaultLogger = l
	return l
}

// Default returns the initialized audit logger, creating a basic one when
// Init has not run (tests, tooling).
func Default() *Logger {
	if defaultLogger == nil {
		return Init("candidate-registry", getEnvironment())
	}
	return defaultLogger
}

// Record logs one audit event. subject is the candidate ID for record events
// or the filename stem for exports.
func (l *Logger) Record(event EventType, subject string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event)),
		zap.String("subject", subject),
		zap.Time("at", time.Now().UTC()),
	}
	l.zapLogger.Info(string(event), append(base, fields...)...)
}

// Sync flushes buffered entries. Called on shutdown.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}

func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
