package toolsdk

import (
	"encoding/json"
	"regexp"

	"golang.org/x/net/html"

	"constructor-script-editor/pkg/validator"
)

// BlockSettings carries everything the host supplies when constructing a tool
type BlockSettings struct {
	Host     Host
	Data     json.RawMessage
	ReadOnly bool
}

// StyleClasses holds the shared class names the host applies across all tools
type StyleClasses struct {
	Block                string `json:"block"`
	Loader               string `json:"loader"`
	Input                string `json:"input"`
	SettingsButton       string `json:"settings_button"`
	SettingsButtonActive string `json:"settings_button_active"`
}

// PasteKind tags the payload shape of a paste event
type PasteKind string

const (
	// PasteKindTag carries a pasted element claimed by tag name
	PasteKindTag PasteKind = "tag"
	// PasteKindPattern carries pasted text claimed by a pattern match
	PasteKindPattern PasteKind = "pattern"
	// PasteKindFile carries a pasted or dropped file
	PasteKindFile PasteKind = "file"
)

// PasteEvent is one intercepted paste, dispatched to the tool that claimed it.
// Exactly one of Node, Text and File is meaningful, selected by Kind.
type PasteEvent struct {
	Kind PasteKind
	Node *html.Node
	Text string
	File *FileData
}

// FileData is a pasted or dropped file already read into memory
type FileData struct {
	Name string
	Data []byte
}

// PasteConfig declares what pasted content a tool claims. The host matches
// pasted input against it and dispatches PasteEvents to the owning tool.
type PasteConfig struct {
	// Patterns maps a pattern name to an expression matched against pasted text
	Patterns map[string]*regexp.Regexp
	// Tags lists element names claimed from pasted markup
	Tags []string
	// Files filters pasted and dropped files by MIME type
	Files FileFilter
}

// FileFilter matches files by MIME type; entries may use "type/*" wildcards
type FileFilter struct {
	MimeTypes []string
}

// Accepts reports whether contentType matches the filter
func (f FileFilter) Accepts(contentType string) bool {
	return validator.MatchesContentType(contentType, f.MimeTypes)
}
