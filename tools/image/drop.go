package image

import (
	"context"
	"encoding/base64"

	"constructor-script-editor/pkg/toolsdk"
	"constructor-script-editor/pkg/validator"
)

// ReadFile converts a dropped or pasted file into a record: the content
// becomes a base64 data URL and the file name becomes the caption. The
// content is packed as is; whether it decodes as an image only surfaces
// when the source loads.
func ReadFile(ctx context.Context, file *toolsdk.FileData) (Record, error) {
	if file == nil || len(file.Data) == 0 {
		return Record{}, ErrFileRequired
	}
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	return Record{URL: EncodeDataURL(file.Data), Caption: file.Name}, nil
}

// EncodeDataURL packs content into a base64 data URL, sniffing the media
// type from the content itself.
func EncodeDataURL(data []byte) string {
	return "data:" + validator.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
}
