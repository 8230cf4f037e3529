package toolsdk

import (
	"fmt"
	"regexp"
)

// Builder provides a fluent interface for creating tool descriptors.
type Builder struct {
	descriptor *Descriptor
	errors     []error
}

// NewBuilder creates a new builder for tool descriptors.
func NewBuilder(toolType string) *Builder {
	return &Builder{
		descriptor: &Descriptor{
			Metadata: ToolMetadata{
				Type:     toolType,
				Sanitize: make(SanitizeConfig),
			},
		},
	}
}

// WithName sets the display name of the tool.
func (b *Builder) WithName(name string) *Builder {
	b.descriptor.Metadata.Name = name
	return b
}

// WithDescription sets the description of the tool.
func (b *Builder) WithDescription(desc string) *Builder {
	b.descriptor.Metadata.Description = desc
	return b
}

// WithIcon sets the toolbox icon markup for the tool.
func (b *Builder) WithIcon(icon string) *Builder {
	b.descriptor.Metadata.Icon = icon
	return b
}

// WithReadOnlySupport declares whether the tool can render non-editable.
func (b *Builder) WithReadOnlySupport(supported bool) *Builder {
	b.descriptor.Metadata.ReadOnlySupport = supported
	return b
}

// WithPaste sets the whole paste declaration at once.
func (b *Builder) WithPaste(cfg PasteConfig) *Builder {
	b.descriptor.Metadata.Paste = cfg
	return b
}

// AddPastePattern registers a named text pattern claimed on paste.
func (b *Builder) AddPastePattern(name, expr string) *Builder {
	re, err := regexp.Compile(expr)
	if err != nil {
		b.errors = append(b.errors, fmt.Errorf("failed to compile paste pattern %s: %w", name, err))
		return b
	}
	if b.descriptor.Metadata.Paste.Patterns == nil {
		b.descriptor.Metadata.Paste.Patterns = make(map[string]*regexp.Regexp)
	}
	b.descriptor.Metadata.Paste.Patterns[name] = re
	return b
}

// AllowFieldMarkup declares the inline elements a saved field keeps when
// sanitized. Calling it with no elements declares a field that keeps none.
func (b *Builder) AllowFieldMarkup(field string, elements ...string) *Builder {
	if b.descriptor.Metadata.Sanitize == nil {
		b.descriptor.Metadata.Sanitize = make(SanitizeConfig)
	}
	b.descriptor.Metadata.Sanitize[field] = FieldRule{AllowedElements: elements}
	return b
}

// WithFactory sets the construction function for the tool.
func (b *Builder) WithFactory(factory Factory) *Builder {
	if factory == nil {
		b.errors = append(b.errors, fmt.Errorf("factory cannot be nil"))
	}
	b.descriptor.New = factory
	return b
}

// Build constructs the final Descriptor and returns any accumulated errors.
func (b *Builder) Build() (*Descriptor, error) {
	if len(b.errors) > 0 {
		return nil, fmt.Errorf("builder has %d error(s): %v", len(b.errors), b.errors[0])
	}

	if b.descriptor.New == nil {
		return nil, fmt.Errorf("factory is required")
	}

	if b.descriptor.Metadata.Type == "" {
		return nil, fmt.Errorf("tool type is required")
	}

	return b.descriptor, nil
}

// MustBuild builds the descriptor and panics if there are errors.
// Use this only when you're certain the configuration is valid.
func (b *Builder) MustBuild() *Descriptor {
	desc, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build tool descriptor: %v", err))
	}
	return desc
}
