package toolsdk

// BaseTool provides default implementation pieces for tools
type BaseTool struct {
	toolType string
	host     Host
	readOnly bool
}

// NewBaseTool creates a new base tool
func NewBaseTool(toolType string, host Host, readOnly bool) *BaseTool {
	return &BaseTool{
		toolType: toolType,
		host:     host,
		readOnly: readOnly,
	}
}

// Type returns the tool type
func (t *BaseTool) Type() string {
	return t.toolType
}

// Host returns the host
func (t *BaseTool) Host() Host {
	return t.host
}

// ReadOnly reports whether the tool renders non-editable
func (t *BaseTool) ReadOnly() bool {
	return t.readOnly
}

// Styles returns the host's shared style classes
func (t *BaseTool) Styles() StyleClasses {
	if t.host != nil {
		return t.host.Styles()
	}
	return StyleClasses{}
}

// Logger returns the host logger
func (t *BaseTool) Logger() Logger {
	if t.host != nil {
		if l := t.host.Logger(); l != nil {
			return l
		}
	}
	return NopLogger()
}

// CurrentBlockIndex returns the host's focused block index
func (t *BaseTool) CurrentBlockIndex() int {
	if t.host != nil {
		return t.host.CurrentBlockIndex()
	}
	return 0
}

// SetStretched notifies the host about a block's stretch state
func (t *BaseTool) SetStretched(index int, stretched bool) {
	if t.host != nil {
		t.host.SetStretched(index, stretched)
	}
}
