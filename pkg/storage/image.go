package storage

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxImageBytes caps raw uploads before decoding.
	MaxImageBytes = 5 << 20
	maxDimension  = 1024
	jpegQuality   = 85
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// Magic byte signatures for the allowed upload formats.
var magicBytes = map[string][][]byte{
	"jpeg": {{0xFF, 0xD8, 0xFF}},
	"png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
}

// SniffImage verifies the payload starts with a known image signature.
// Extension and Content-Type headers are attacker-controlled; the content
// itself is not.
func SniffImage(data []byte) error {
	for _, sigs := range magicBytes {
		for _, sig := range sigs {
			if len(data) >= len(sig) && bytes.Equal(data[:len(sig)], sig) {
				return nil
			}
		}
	}
	return ErrUnsupportedImage
}

// ProcessImage decodes, downscales to at most maxDimension on the longest
// side, and re-encodes as JPEG. Re-encoding strips metadata and any payload
// hidden past the image data.
func ProcessImage(data []byte) ([]byte, error) {
	if len(data) > MaxImageBytes {
		return nil, errors.New("image exceeds size limit")
	}
	if err := SniffImage(data); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width > maxDimension || height > maxDimension {
		if width >= height {
			newWidth = maxDimension
			newHeight = height * maxDimension / width
		} else {
			newHeight = maxDimension
			newWidth = width * maxDimension / height
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
