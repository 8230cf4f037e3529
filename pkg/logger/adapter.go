package logger

import (
	"sync"

	"constructor-script-editor/pkg/toolsdk"
)

// ToolLogger adapts the logger package to the toolsdk.Logger interface
type ToolLogger struct{}

var initOnce sync.Once

// NewToolLogger returns a toolsdk.Logger backed by the package logger,
// initializing it on first use. Tools fall back to it when the host
// supplies no logger of its own.
func NewToolLogger() toolsdk.Logger {
	initOnce.Do(Init)
	return &ToolLogger{}
}

func (a *ToolLogger) Debug(msg string, fields ...interface{}) {
	Debug(msg, convertFieldsToMap(fields...))
}

func (a *ToolLogger) Info(msg string, fields ...interface{}) {
	Info(msg, convertFieldsToMap(fields...))
}

func (a *ToolLogger) Warn(msg string, fields ...interface{}) {
	Warn(msg, convertFieldsToMap(fields...))
}

func (a *ToolLogger) Error(msg string, fields ...interface{}) {
	Error(nil, msg, convertFieldsToMap(fields...))
}

func (a *ToolLogger) Fatal(msg string, fields ...interface{}) {
	Fatal(msg, convertFieldsToMap(fields...))
}

// convertFieldsToMap converts variadic interface{} to map[string]interface{}
// Expected format: key1, value1, key2, value2, ...
func convertFieldsToMap(fields ...interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	result := make(map[string]interface{})
	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			result[key] = fields[i+1]
		}
	}
	return result
}
