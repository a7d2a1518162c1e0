package watermark

import (
	"errors"
	"image"
	"io"
	"io/fs"
	"os"

	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"

	// Register common decoders, including WebP, BMP and TIFF via x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeFile opens and decodes the image at path. JPEG files are rotated or
// mirrored according to their EXIF orientation tag.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", NewError(KindFileNotFound, "open", path, err)
		}
		return nil, "", NewError(KindDecodeFailure, "open", path, err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", NewError(KindDecodeFailure, "decode", path, err)
	}

	if format == "jpeg" {
		if o := readOrientation(f); o > 1 {
			log.Debug().Str("path", path).Int("orientation", o).Msg("Applying EXIF orientation")
			img = applyOrientation(img, o)
		}
	}

	return img, format, nil
}

// readOrientation returns the EXIF orientation (1-8), or 0 when the file has
// no readable EXIF block.
func readOrientation(rs io.ReadSeeker) int {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0
	}

	exifData, err := imagemeta.Decode(rs)
	if err != nil {
		log.Debug().Err(err).Msg("No EXIF metadata, keeping stored orientation")
		return 0
	}

	return int(exifData.Orientation)
}
