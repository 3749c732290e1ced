package measure

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/folio/model"
)

// ImageIntrinsicSize decodes just enough of the image stream to report
// its pixel dimensions.
func ImageIntrinsicSize(r io.Reader) (w, h float64, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// ResolveImageSize fills in a block image's missing dimensions from the
// intrinsic size of a data: URL source, preserving aspect ratio when
// only one dimension is declared. Unreadable sources leave the declared
// size untouched and produce a warning.
func ResolveImageSize(img *model.ImageBlock) []model.Warning {
	if img.WidthPx > 0 && img.HeightPx > 0 {
		return nil
	}
	data, ok := decodeDataURL(img.Src)
	if !ok {
		return nil // remote sources resolve at the host
	}
	w, h, err := ImageIntrinsicSize(bytes.NewReader(data))
	if err != nil {
		return []model.Warning{{
			Code:    model.WarnImageUnreadable,
			Message: fmt.Sprintf("image %s: %v", img.BlockID, err),
		}}
	}
	switch {
	case img.WidthPx > 0 && h > 0 && w > 0:
		img.HeightPx = img.WidthPx * h / w
	case img.HeightPx > 0 && h > 0 && w > 0:
		img.WidthPx = img.HeightPx * w / h
	default:
		img.WidthPx, img.HeightPx = w, h
	}
	return nil
}

// decodeDataURL extracts the payload of a base64 data: URL.
func decodeDataURL(src string) ([]byte, bool) {
	if !strings.HasPrefix(src, "data:") {
		return nil, false
	}
	i := strings.Index(src, ",")
	if i < 0 {
		return nil, false
	}
	meta, payload := src[5:i], src[i+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return []byte(payload), true
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	return data, true
}
