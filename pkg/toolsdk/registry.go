package toolsdk

import (
	"strings"
	"sync"
)

var (
	mu          sync.RWMutex
	descriptors = make(map[string]*Descriptor)
)

// Register adds a descriptor under its declared type. Descriptors without
// a factory or a type are ignored.
func Register(desc *Descriptor) {
	if desc == nil || desc.New == nil {
		return
	}
	cleaned := strings.ToLower(strings.TrimSpace(desc.Metadata.Type))
	if cleaned == "" {
		return
	}

	mu.Lock()
	descriptors[cleaned] = desc
	mu.Unlock()
}

// DescriptorFor returns the descriptor registered under toolType.
func DescriptorFor(toolType string) (*Descriptor, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(toolType))
	if cleaned == "" {
		return nil, false
	}

	mu.RLock()
	desc, ok := descriptors[cleaned]
	mu.RUnlock()
	return desc, ok
}

// FactoryFor returns the factory registered under toolType.
func FactoryFor(toolType string) (Factory, bool) {
	desc, ok := DescriptorFor(toolType)
	if !ok {
		return nil, false
	}
	return desc.New, true
}

// All returns a copy of the registered descriptors keyed by type.
func All() map[string]*Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]*Descriptor, len(descriptors))
	for toolType, desc := range descriptors {
		result[toolType] = desc
	}
	return result
}
