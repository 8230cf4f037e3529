package dom

import "testing"

func TestElement_SkipsEmptyClasses(t *testing.T) {
	n := Element("div", "", "block", "", "block")

	if got := Attr(n, "class"); got != "block" {
		t.Fatalf("expected class %q, got %q", "block", got)
	}
}

func TestAttrHelpers(t *testing.T) {
	n := Element("img")

	if got := Attr(n, "src"); got != "" {
		t.Fatalf("expected empty value for a missing attribute, got %q", got)
	}

	SetAttr(n, "src", "a.png")
	SetAttr(n, "src", "b.png")
	if got := Attr(n, "src"); got != "b.png" {
		t.Fatalf("expected the attribute to be replaced, got %q", got)
	}
	if !HasAttr(n, "src") {
		t.Fatalf("expected the attribute to be present")
	}

	RemoveAttr(n, "src")
	if HasAttr(n, "src") {
		t.Fatalf("expected the attribute to be removed")
	}
}

func TestAttrHelpers_NilNode(t *testing.T) {
	if got := Attr(nil, "src"); got != "" {
		t.Fatalf("expected empty value for nil node, got %q", got)
	}
	if HasAttr(nil, "src") {
		t.Fatalf("expected no attribute on nil node")
	}
	SetAttr(nil, "src", "a.png")
	RemoveAttr(nil, "src")
	AddClass(nil, "x")
	RemoveClass(nil, "x")
	Detach(nil)
}

func TestClassHelpers(t *testing.T) {
	n := Element("div", "one")

	AddClass(n, "two")
	if !HasClass(n, "one") || !HasClass(n, "two") {
		t.Fatalf("expected both classes, got %q", Attr(n, "class"))
	}

	AddClass(n, "two")
	if got := Attr(n, "class"); got != "one two" {
		t.Fatalf("expected no duplicate class, got %q", got)
	}

	RemoveClass(n, "one")
	if HasClass(n, "one") {
		t.Fatalf("expected class one to be removed")
	}

	SetClass(n, "three", true)
	if !HasClass(n, "three") {
		t.Fatalf("expected SetClass to add the class")
	}
	SetClass(n, "three", false)
	if HasClass(n, "three") {
		t.Fatalf("expected SetClass to remove the class")
	}
}

func TestSetInnerHTML_RoundTrip(t *testing.T) {
	n := Element("div")

	if err := SetInnerHTML(n, "line<br/>break"); err != nil {
		t.Fatalf("expected fragment to parse, got error: %v", err)
	}
	if got := InnerHTML(n); got != "line<br/>break" {
		t.Fatalf("expected inner html to round-trip, got %q", got)
	}

	if err := SetInnerHTML(n, "replaced"); err != nil {
		t.Fatalf("expected plain text to parse, got error: %v", err)
	}
	if got := InnerHTML(n); got != "replaced" {
		t.Fatalf("expected children to be replaced, got %q", got)
	}

	if err := SetInnerHTML(n, ""); err != nil {
		t.Fatalf("expected empty fragment to parse, got error: %v", err)
	}
	if got := InnerHTML(n); got != "" {
		t.Fatalf("expected no children, got %q", got)
	}
}

func TestRender_SerializesTree(t *testing.T) {
	n := Element("div", "box")
	n.AppendChild(Text("hi"))

	if got := Render(n); got != `<div class="box">hi</div>` {
		t.Fatalf("unexpected serialization: %q", got)
	}
}

func TestInnerHTML_NilNode(t *testing.T) {
	if got := InnerHTML(nil); got != "" {
		t.Fatalf("expected empty inner html for nil node, got %q", got)
	}
}
