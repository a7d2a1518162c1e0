package watermark

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// exifOrientationSegment builds an APP1 Exif segment holding a single
// big-endian IFD0 entry for the orientation tag.
func exifOrientationSegment(o uint16) []byte {
	var payload bytes.Buffer
	payload.WriteString("Exif\x00\x00")
	payload.WriteString("MM\x00\x2a")
	binary.Write(&payload, binary.BigEndian, uint32(8)) // IFD0 offset
	binary.Write(&payload, binary.BigEndian, uint16(1)) // entry count
	binary.Write(&payload, binary.BigEndian, uint16(0x0112))
	binary.Write(&payload, binary.BigEndian, uint16(3)) // SHORT
	binary.Write(&payload, binary.BigEndian, uint32(1))
	binary.Write(&payload, binary.BigEndian, o)
	binary.Write(&payload, binary.BigEndian, uint16(0))
	binary.Write(&payload, binary.BigEndian, uint32(0)) // no next IFD

	seg := []byte{0xff, 0xe1}
	seg = binary.BigEndian.AppendUint16(seg, uint16(payload.Len()+2))
	return append(seg, payload.Bytes()...)
}

func TestDecodeFileAppliesExifOrientation(t *testing.T) {
	var enc bytes.Buffer
	if err := jpeg.Encode(&enc, solidImage(40, 20, white), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := enc.Bytes()

	cases := []struct {
		name string
		o    uint16
		w, h int
	}{
		{name: "rotate 90 cw", o: 6, w: 20, h: 40},
		{name: "rotate 180", o: 3, w: 40, h: 20},
		{name: "upright", o: 1, w: 40, h: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// SOI, then the Exif segment, then the rest of the stream.
			data := append([]byte{}, raw[:2]...)
			data = append(data, exifOrientationSegment(tc.o)...)
			data = append(data, raw[2:]...)

			path := filepath.Join(t.TempDir(), "rotated.jpg")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			img, format, err := DecodeFile(path)
			if err != nil {
				t.Fatalf("DecodeFile: %v", err)
			}
			if format != "jpeg" {
				t.Fatalf("format = %q, want jpeg", format)
			}
			if got := img.Bounds().Size(); got.X != tc.w || got.Y != tc.h {
				t.Fatalf("size = %v, want %dx%d", got, tc.w, tc.h)
			}
		})
	}
}

func TestEncodeFormats(t *testing.T) {
	src := solidImage(3, 3, red)

	var buf bytes.Buffer
	if err := Encode(&buf, src, "png"); err != nil {
		t.Fatalf("Encode png: %v", err)
	}
	got, format, err := Decode(&buf)
	if err != nil || format != "png" {
		t.Fatalf("Decode = %q, %v; want png", format, err)
	}
	if !imagesEqual(src, got) {
		t.Fatalf("png round trip changed pixels")
	}

	if err := Encode(&bytes.Buffer{}, src, "heic"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestApplyOrientation(t *testing.T) {
	// 3x2 image with a single marked pixel at the stored top-left.
	src := solidImage(3, 2, white)
	src.SetNRGBA(0, 0, red)

	cases := []struct {
		o     int
		w, h  int
		wantX int
		wantY int
	}{
		{o: 1, w: 3, h: 2, wantX: 0, wantY: 0},
		{o: 2, w: 3, h: 2, wantX: 2, wantY: 0},
		{o: 3, w: 3, h: 2, wantX: 2, wantY: 1},
		{o: 4, w: 3, h: 2, wantX: 0, wantY: 1},
		{o: 5, w: 2, h: 3, wantX: 0, wantY: 0},
		{o: 6, w: 2, h: 3, wantX: 1, wantY: 0},
		{o: 7, w: 2, h: 3, wantX: 1, wantY: 2},
		{o: 8, w: 2, h: 3, wantX: 0, wantY: 2},
	}

	for _, tc := range cases {
		got := applyOrientation(src, tc.o)
		if got.Bounds().Dx() != tc.w || got.Bounds().Dy() != tc.h {
			t.Fatalf("orientation %d: size %v, want %dx%d", tc.o, got.Bounds().Size(), tc.w, tc.h)
		}
		if c := nrgbaAt(got, tc.wantX, tc.wantY); c != red {
			t.Fatalf("orientation %d: pixel (%d,%d) = %+v, want red", tc.o, tc.wantX, tc.wantY, c)
		}
	}
}

func TestEncodeFileLosslessFormats(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 90, A: 255})
		}
	}

	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(dir, name)
		if err := EncodeFile(path, src); err != nil {
			t.Fatalf("EncodeFile(%s): %v", name, err)
		}
		got, _, err := DecodeFile(path)
		if err != nil {
			t.Fatalf("DecodeFile(%s): %v", name, err)
		}
		if !imagesEqual(src, got) {
			t.Fatalf("%s round trip changed pixels", name)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]string{
		"a.jpg":  "jpeg",
		"a.JPEG": "jpeg",
		"a.png":  "png",
		"a.webp": "webp",
		"a.tif":  "tiff",
		"a.gif":  "gif",
	}
	for path, want := range cases {
		got, err := FormatForPath(path)
		if err != nil || got != want {
			t.Errorf("FormatForPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatForPath("a"); err == nil {
		t.Errorf("expected error for missing extension")
	}
}

func TestMeanLuma(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	if got := MeanLuma(img, img.Bounds()); math.Abs(got-100) > 0.01 {
		t.Fatalf("MeanLuma = %.3f, want 100", got)
	}
	if got := MeanLuma(img, image.Rect(10, 10, 20, 20)); got != 0 {
		t.Fatalf("MeanLuma outside bounds = %.3f, want 0", got)
	}
}
