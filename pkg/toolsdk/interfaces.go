// Package toolsdk provides interfaces and types for building independent block tools
package toolsdk

import (
	"context"

	"golang.org/x/net/html"
)

// Tool represents one block's view/controller pair inside the editor
type Tool interface {
	// Render returns the block's container element
	Render() *html.Node
	// Save reads the live values under root back into block data
	Save(root *html.Node) (any, error)
	// Destroy releases the tool; completions arriving afterwards are dropped
	Destroy()
}

// SettingsRenderer is implemented by tools that expose a settings panel
type SettingsRenderer interface {
	// RenderSettings returns the settings panel container
	RenderSettings() *html.Node
}

// PasteHandler is implemented by tools that claim pasted content
type PasteHandler interface {
	// OnPaste consumes one pasted payload
	OnPaste(ctx context.Context, event PasteEvent) error
}

// Host provides access to editor services for tools
type Host interface {
	// CurrentBlockIndex returns the index of the currently focused block
	CurrentBlockIndex() int
	// Styles returns the shared style class names
	Styles() StyleClasses
	// SetStretched marks the block at index as stretched
	SetStretched(index int, stretched bool)
	// Logger returns the logger
	Logger() Logger
}

// Logger provides logging functionality
type Logger interface {
	// Debug logs debug message
	Debug(msg string, fields ...interface{})
	// Info logs info message
	Info(msg string, fields ...interface{})
	// Warn logs warning message
	Warn(msg string, fields ...interface{})
	// Error logs error message
	Error(msg string, fields ...interface{})
	// Fatal logs fatal message and exits
	Fatal(msg string, fields ...interface{})
}

// NopLogger returns a Logger that discards everything
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...interface{}) {}
func (nopLogger) Info(msg string, fields ...interface{})  {}
func (nopLogger) Warn(msg string, fields ...interface{})  {}
func (nopLogger) Error(msg string, fields ...interface{}) {}
func (nopLogger) Fatal(msg string, fields ...interface{}) {}
