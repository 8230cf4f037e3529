package image

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"constructor-script-editor/pkg/dom"
	"constructor-script-editor/pkg/toolsdk"
)

// The retired media host whose view links map onto the public site. This
// is a single named substitution, not a general URL rewriter.
const (
	legacyMediaPrefix = "https://fs.new.histmag.org/view/"
	publicMediaPrefix = "https://histmag.org/"
)

// imageURLPattern recognizes pasted text as a direct image link by its
// extension.
var imageURLPattern = regexp.MustCompile(`(?i)https?://\S+\.(gif|jpe?g|tiff?|png|webp)$`)

// PasteConfig declares what pasted content this tool claims: direct image
// links, img elements and image files.
func PasteConfig() toolsdk.PasteConfig {
	return toolsdk.PasteConfig{
		Patterns: map[string]*regexp.Regexp{"image": imageURLPattern},
		Tags:     []string{"img"},
		Files:    toolsdk.FileFilter{MimeTypes: []string{"image/*"}},
	}
}

// OnPaste funnels one pasted payload into the record. Every variant
// replaces the record outright instead of merging, so a paste resets the
// block to just its new source.
func (t *Tool) OnPaste(ctx context.Context, ev toolsdk.PasteEvent) error {
	switch ev.Kind {
	case toolsdk.PasteKindTag:
		t.Replace(Record{URL: dom.Attr(ev.Node, "src")})
		return nil

	case toolsdk.PasteKindPattern:
		t.Replace(Record{URL: RewriteLegacyURL(ev.Text)})
		return nil

	case toolsdk.PasteKindFile:
		rec, err := ReadFile(ctx, ev.File)
		if err != nil {
			return fmt.Errorf("read pasted file: %w", err)
		}
		t.Replace(rec)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownPasteKind, ev.Kind)
	}
}

// RewriteLegacyURL maps view links on the retired media host onto the
// public site. Anything else passes through unchanged.
func RewriteLegacyURL(link string) string {
	if strings.HasPrefix(link, legacyMediaPrefix) {
		return publicMediaPrefix + strings.TrimPrefix(link, legacyMediaPrefix)
	}
	return link
}
