package watermark

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// MaxJPEGQuality is the JPEG quality used for every written file.
const MaxJPEGQuality = 100

// Encode writes img in the given format ("jpeg", "png", "gif", "webp",
// "bmp", "tiff") at the highest quality that format supports.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: MaxJPEGQuality})
	case "png":
		return png.Encode(w, img)
	case "gif":
		return gif.Encode(w, img, nil)
	case "webp":
		return webp.Encode(w, img, &webp.Options{Lossless: true, Quality: 100})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// FormatForPath picks the output format from the file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".png":
		return "png", nil
	case ".gif":
		return "gif", nil
	case ".webp":
		return "webp", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("no encoder for extension %q", filepath.Ext(path))
	}
}

// EncodeFile writes img to path in the format implied by its extension. The
// image is encoded into a temporary sibling file that is renamed into place,
// so a failed write never leaves a partial file at path.
func EncodeFile(path string, img image.Image) error {
	format, err := FormatForPath(path)
	if err != nil {
		return NewError(KindWriteFailure, "encode", path, err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return NewError(KindWriteFailure, "create", path, err)
	}
	defer os.Remove(tmp)

	if err := Encode(out, img, format); err != nil {
		out.Close()
		return NewError(KindWriteFailure, "encode", path, err)
	}
	if err := out.Close(); err != nil {
		return NewError(KindWriteFailure, "close", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return NewError(KindWriteFailure, "rename", path, err)
	}
	return nil
}
