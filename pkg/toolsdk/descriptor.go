package toolsdk

// Factory constructs a tool instance from host-supplied block settings.
type Factory func(settings BlockSettings) (Tool, error)

// ToolMetadata describes a tool type with its display properties and the
// static declarations the host consumes without constructing the tool.
type ToolMetadata struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Icon            string `json:"icon,omitempty"`
	ReadOnlySupport bool   `json:"read_only_support"`

	Paste    PasteConfig    `json:"-"`
	Sanitize SanitizeConfig `json:"-"`
}

// Descriptor wraps a tool factory with its metadata.
type Descriptor struct {
	New      Factory
	Metadata ToolMetadata
}
