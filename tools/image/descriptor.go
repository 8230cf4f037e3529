package image

import (
	"encoding/json"
	"fmt"

	"constructor-script-editor/pkg/toolsdk"
)

func init() {
	toolsdk.Register(Describe())
}

// Describe builds the descriptor the host discovers this tool through:
// toolbox entry, read-only support, paste claims and the per-field
// sanitize rules applied to saved data.
func Describe() *toolsdk.Descriptor {
	return toolsdk.NewBuilder(ToolType).
		WithName("Image").
		WithDescription("Image with caption, width, alt text, license and link").
		WithIcon(toolboxIcon).
		WithReadOnlySupport(true).
		WithPaste(PasteConfig()).
		AllowFieldMarkup("url").
		AllowFieldMarkup("caption", "br").
		AllowFieldMarkup("width", "br").
		AllowFieldMarkup("alt", "br").
		AllowFieldMarkup("license", "br").
		AllowFieldMarkup("link", "br").
		WithFactory(NewFromSettings).
		MustBuild()
}

// NewFromSettings adapts raw block settings into a constructed tool.
func NewFromSettings(s toolsdk.BlockSettings) (toolsdk.Tool, error) {
	var rec Record
	if len(s.Data) > 0 {
		if err := json.Unmarshal(s.Data, &rec); err != nil {
			return nil, fmt.Errorf("decode image block data: %w", err)
		}
	}
	return New(Settings{Host: s.Host, Data: rec, ReadOnly: s.ReadOnly}), nil
}

const toolboxIcon = `<svg width="17" height="15" viewBox="0 0 336 276" xmlns="http://www.w3.org/2000/svg"><path d="M291 150V79c0-19-15-34-34-34H79c-19 0-34 15-34 34v42l67-44 81 72 56-29 42 30zm0 52l-43-30-56 30-81-67-66 39v23c0 19 15 34 34 34h178c17 0 31-13 34-29zM79 0h178c44 0 79 35 79 79v118c0 44-35 79-79 79H79c-44 0-79-35-79-79V79C0 35 35 0 79 0z"/></svg>`
