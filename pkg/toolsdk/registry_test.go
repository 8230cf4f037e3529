package toolsdk

import "testing"

func probeDescriptor(toolType string) *Descriptor {
	return &Descriptor{
		New:      func(BlockSettings) (Tool, error) { return nil, nil },
		Metadata: ToolMetadata{Type: toolType, Name: toolType},
	}
}

func TestRegister_NormalizesType(t *testing.T) {
	Register(probeDescriptor(" Quote "))

	if _, ok := DescriptorFor("quote"); !ok {
		t.Fatalf("expected descriptor to be registered under the cleaned type")
	}
	if _, ok := DescriptorFor("QUOTE"); !ok {
		t.Fatalf("expected lookup to normalize the requested type")
	}
}

func TestRegister_IgnoresInvalidDescriptors(t *testing.T) {
	Register(nil)
	Register(&Descriptor{Metadata: ToolMetadata{Type: "no-factory"}})
	if _, ok := DescriptorFor("no-factory"); ok {
		t.Fatalf("expected descriptor without a factory to be ignored")
	}

	Register(&Descriptor{New: func(BlockSettings) (Tool, error) { return nil, nil }})
	for toolType := range All() {
		if toolType == "" {
			t.Fatalf("expected no empty type in the registry")
		}
	}
}

func TestDescriptorFor_EmptyType(t *testing.T) {
	if _, ok := DescriptorFor("  "); ok {
		t.Fatalf("expected no descriptor for a blank type")
	}
}

func TestFactoryFor_ReturnsRegisteredFactory(t *testing.T) {
	called := false
	Register(&Descriptor{
		New: func(BlockSettings) (Tool, error) {
			called = true
			return nil, nil
		},
		Metadata: ToolMetadata{Type: "factory-probe"},
	})

	factory, ok := FactoryFor("factory-probe")
	if !ok {
		t.Fatalf("expected a factory, got none")
	}
	if _, err := factory(BlockSettings{}); err != nil {
		t.Fatalf("expected the factory call to succeed, got %v", err)
	}
	if !called {
		t.Fatalf("expected the registered factory to be invoked")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	Register(probeDescriptor("copy-probe"))

	all := All()
	delete(all, "copy-probe")

	if _, ok := DescriptorFor("copy-probe"); !ok {
		t.Fatalf("expected the registry to be unaffected by mutating the returned map")
	}
}
