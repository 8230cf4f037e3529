package image

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"constructor-script-editor/pkg/dom"
	"constructor-script-editor/pkg/toolsdk"
)

func TestOnPaste_TagReplacesRecord(t *testing.T) {
	tool := New(Settings{
		Host: newFakeHost(),
		Data: Record{Caption: "old", Width: "480", License: "cc3"},
	})

	img := dom.Element("img")
	dom.SetAttr(img, "src", "https://example.com/pasted.png")

	if err := tool.OnPaste(context.Background(), toolsdk.PasteEvent{Kind: toolsdk.PasteKindTag, Node: img}); err != nil {
		t.Fatalf("expected paste to succeed, got %v", err)
	}

	expected := Record{URL: "https://example.com/pasted.png"}
	if diff := cmp.Diff(expected, tool.Data()); diff != "" {
		t.Fatalf("record mismatch (-expected +got):\n%s", diff)
	}
}

func TestOnPaste_PatternRewritesPrivateStorageHost(t *testing.T) {
	tool := New(Settings{Host: newFakeHost()})

	event := toolsdk.PasteEvent{
		Kind: toolsdk.PasteKindPattern,
		Text: "https://fs.new.histmag.org/view/abc.png",
	}
	if err := tool.OnPaste(context.Background(), event); err != nil {
		t.Fatalf("expected paste to succeed, got %v", err)
	}

	if got := tool.Data().URL; got != "https://histmag.org/abc.png" {
		t.Fatalf("expected rewritten url, got %q", got)
	}
}

func TestOnPaste_FileReplacesWithDataURL(t *testing.T) {
	tool := New(Settings{Host: newFakeHost(), Data: Record{Caption: "old", Width: "480"}})

	file := &toolsdk.FileData{Name: "photo.png", Data: []byte{0x01, 0x02, 0x03}}
	if err := tool.OnPaste(context.Background(), toolsdk.PasteEvent{Kind: toolsdk.PasteKindFile, File: file}); err != nil {
		t.Fatalf("expected file paste to succeed, got %v", err)
	}

	data := tool.Data()
	if data.Caption != "photo.png" {
		t.Fatalf("expected caption %q, got %q", "photo.png", data.Caption)
	}
	if !strings.HasPrefix(data.URL, "data:") {
		t.Fatalf("expected a data url, got %q", data.URL)
	}
	if data.Width != "" || data.License != "" {
		t.Fatalf("expected file paste to reset the remaining fields, got %+v", data)
	}
}

func TestOnPaste_FileWithoutPayloadFails(t *testing.T) {
	tool := New(Settings{Host: newFakeHost(), Data: Record{Caption: "kept"}})

	err := tool.OnPaste(context.Background(), toolsdk.PasteEvent{Kind: toolsdk.PasteKindFile})
	if !errors.Is(err, ErrFileRequired) {
		t.Fatalf("expected ErrFileRequired, got %v", err)
	}
	if got := tool.Data().Caption; got != "kept" {
		t.Fatalf("expected a failed paste to leave the record alone, got caption %q", got)
	}
}

func TestOnPaste_UnknownKindFails(t *testing.T) {
	tool := New(Settings{Host: newFakeHost()})

	err := tool.OnPaste(context.Background(), toolsdk.PasteEvent{Kind: "telepathy"})
	if !errors.Is(err, ErrUnknownPasteKind) {
		t.Fatalf("expected ErrUnknownPasteKind, got %v", err)
	}
}

func TestOnPaste_DroppedFileLoadsWithDefaultLoader(t *testing.T) {
	tool := New(Settings{Host: newFakeHost()})
	wrapper := tool.Render()

	file := &toolsdk.FileData{Name: "pixel.png", Data: onePixelPNG(t)}
	if err := tool.OnPaste(context.Background(), toolsdk.PasteEvent{Kind: toolsdk.PasteKindFile, File: file}); err != nil {
		t.Fatalf("expected drop to succeed, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := tool.WaitLoad(ctx); err != nil {
		t.Fatalf("expected load to settle, got %v", err)
	}

	img := dom.Find(wrapper, dom.ByTag("img"))
	if img == nil {
		t.Fatalf("expected dropped image to attach")
	}
	if got := dom.Attr(img, "src"); !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("expected a png data url src, got %q", got)
	}
}

func TestRewriteLegacyURL(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "storage view link",
			input:    "https://fs.new.histmag.org/view/abc.png",
			expected: "https://histmag.org/abc.png",
		},
		{
			name:     "nested path",
			input:    "https://fs.new.histmag.org/view/2020/img.jpeg",
			expected: "https://histmag.org/2020/img.jpeg",
		},
		{
			name:     "other host untouched",
			input:    "https://example.com/a.png",
			expected: "https://example.com/a.png",
		},
		{
			name:     "prefix match is case sensitive",
			input:    "https://FS.new.histmag.org/view/abc.png",
			expected: "https://FS.new.histmag.org/view/abc.png",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RewriteLegacyURL(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestPasteConfig_Declarations(t *testing.T) {
	cfg := PasteConfig()

	pattern, ok := cfg.Patterns["image"]
	if !ok {
		t.Fatalf("expected an image pattern to be declared")
	}
	matches := []string{
		"https://example.com/a.png",
		"http://example.com/b.JPG",
		"https://example.com/c.jpeg",
		"https://example.com/d.tiff",
		"https://example.com/e.tif",
		"HTTPS://EXAMPLE.COM/F.WEBP",
		"https://example.com/g.gif",
	}
	for _, m := range matches {
		if !pattern.MatchString(m) {
			t.Fatalf("expected pattern to match %q", m)
		}
	}
	rejects := []string{
		"https://example.com/a.svg",
		"https://example.com/a.png?x=1",
		"ftp://example.com/a.png",
		"just text",
	}
	for _, m := range rejects {
		if pattern.MatchString(m) {
			t.Fatalf("expected pattern to reject %q", m)
		}
	}

	if diff := cmp.Diff([]string{"img"}, cfg.Tags); diff != "" {
		t.Fatalf("tags mismatch (-expected +got):\n%s", diff)
	}
	if !cfg.Files.Accepts("image/png") {
		t.Fatalf("expected image files to be accepted")
	}
	if cfg.Files.Accepts("application/pdf") {
		t.Fatalf("expected non-image files to be rejected")
	}
}
