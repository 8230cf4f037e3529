package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	stdimage "image"
	"strings"

	// Decoders for the formats the paste pattern recognizes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/tiff"
)

// Loader resolves an image source, returning once it has loaded or failed.
// It stands in for the browser's image-decode pipeline; hosts with real
// fetching inject their own.
type Loader interface {
	Load(ctx context.Context, src string) error
}

// DefaultLoader settles sources in-process: data URLs must carry a
// decodable image payload, anything else is taken at its word since
// fetching is the host's business.
type DefaultLoader struct{}

// Load implements Loader.
func (DefaultLoader) Load(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if src == "" {
		return ErrEmptySource
	}
	if !strings.HasPrefix(src, "data:") {
		return nil
	}

	sep := strings.IndexByte(src, ',')
	if sep < 0 {
		return fmt.Errorf("%w: missing payload", ErrBadDataURL)
	}
	meta, payload := src[len("data:"):sep], src[sep+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return fmt.Errorf("%w: not base64 encoded", ErrBadDataURL)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("decode data url payload: %w", err)
	}
	if _, _, err := stdimage.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("decode image header: %w", err)
	}
	return nil
}
