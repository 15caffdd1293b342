package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// Downscaler enforces the maximum-dimension cap when the service serves
// origin assets itself. Some source photos exceed safe processing limits for
// downstream image optimizers, so anything larger is resized before leaving
// the process.
type Downscaler struct {
	maxDimension int
	quality      int
}

// NewDownscaler creates a downscaler with the given dimension cap.
func NewDownscaler(maxDimension int) *Downscaler {
	if maxDimension <= 0 {
		maxDimension = 2000
	}
	return &Downscaler{maxDimension: maxDimension, quality: 85}
}

// Result is a downscaled image ready for serving.
type Result struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Downscale decodes the image and, when a side exceeds the cap or the
// requested width, resizes it with aspect ratio preserved. Requested widths
// above the cap are clamped, mirroring the CDN's limit crop.
func (d *Downscaler) Downscale(reader io.Reader, requestedWidth int) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	limit := d.maxDimension
	if requestedWidth > 0 && requestedWidth < limit {
		limit = requestedWidth
	}

	bounds := img.Bounds()
	if bounds.Dx() <= limit && bounds.Dy() <= d.maxDimension {
		return &Result{
			Data:        data,
			ContentType: mimeFromFormat(format),
			Width:       bounds.Dx(),
			Height:      bounds.Dy(),
		}, nil
	}

	resized := imaging.Fit(img, limit, d.maxDimension, imaging.Lanczos)

	encoded, err := d.encode(resized, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Result{
		Data:        encoded,
		ContentType: mimeFromFormat(format),
		Width:       resized.Bounds().Dx(),
		Height:      resized.Bounds().Dy(),
	}, nil
}

func (d *Downscaler) encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, err
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: d.quality}); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func mimeFromFormat(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
