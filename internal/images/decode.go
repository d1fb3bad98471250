package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"
	"unicode"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const dataURLPrefix = "data:image"

// passthroughFormats are sent to the model as uploaded when they carry no alpha channel
var passthroughFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// Prepared is an uploaded image ready to hand to a model
type Prepared struct {
	Data       []byte
	MIMEType   string
	Format     string
	Width      int
	Height     int
	Normalized bool
}

// StripDataURL removes a "data:image/...;base64," header. Anything else is returned unchanged.
func StripDataURL(encoded string) (string, error) {
	if !strings.HasPrefix(encoded, dataURLPrefix) {
		return encoded, nil
	}
	_, payload, found := strings.Cut(encoded, ",")
	if !found {
		return "", fmt.Errorf("data URL has no payload")
	}
	return payload, nil
}

// DecodeBase64 decodes standard base64, tolerating embedded whitespace and missing padding
func DecodeBase64(encoded string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err == nil {
		return data, nil
	}
	if len(cleaned)%4 != 0 {
		if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(cleaned, "=")); rawErr == nil {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("failed to decode base64 image: %w", err)
}

// Prepare decodes a base64 or data URL image and normalizes it for the model.
// Images with an alpha channel are flattened to opaque RGB by dropping alpha.
func Prepare(encoded string) (*Prepared, error) {
	payload, err := StripDataURL(encoded)
	if err != nil {
		return nil, err
	}

	raw, err := DecodeBase64(payload)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	prepared := &Prepared{
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	alpha := HasAlpha(img)
	if !alpha && passthroughFormats[format] {
		prepared.Data = raw
		prepared.MIMEType = "image/" + format
		return prepared, nil
	}

	if alpha {
		img = DropAlpha(img)
		prepared.Normalized = true
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to re-encode image: %w", err)
	}
	prepared.Data = buf.Bytes()
	prepared.MIMEType = "image/png"
	return prepared, nil
}

// HasAlpha reports whether the decoded image stores an alpha channel. The PNG
// decoder hands back *image.RGBA and *image.RGBA64 for plain truecolor files, so
// those only count when some pixel is actually translucent.
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.RGBA:
		return !src.Opaque()
	case *image.RGBA64:
		return !src.Opaque()
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return true
	}
	return false
}

// DropAlpha converts img to opaque RGB, keeping the stored color of every pixel
// and discarding alpha. No compositing against a background takes place.
func DropAlpha(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetRGBA(x, y, storedColor(img, x, y))
		}
	}
	return dst
}

// storedColor reads the non-premultiplied channels of a pixel. Going through
// RGBA() would zero the color of fully transparent pixels.
func storedColor(img image.Image, x, y int) color.RGBA {
	switch src := img.(type) {
	case *image.NYCbCrA:
		c := src.YCbCrAt(x, y)
		r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	case *image.NRGBA64:
		c := src.NRGBA64At(x, y)
		return color.RGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: 0xff}
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
