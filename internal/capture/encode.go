package capture

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
)

const (
	jpegQuality = 92
	// MaxWidth bounds the uploaded photo. Wider frames are scaled down.
	MaxWidth = 1280
)

const dataURIPrefix = "data:image/jpeg;base64,"

// EncodeDataURI draws frame onto an RGBA canvas and returns it as a JPEG
// data URI.
func EncodeDataURI(frame image.Image) (string, error) {
	canvas := drawCanvas(frame)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func drawCanvas(frame image.Image) *image.RGBA {
	src := frame.Bounds()
	w, h := src.Dx(), src.Dy()
	if w > MaxWidth {
		h = max(h*MaxWidth/w, 1)
		w = MaxWidth
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == src.Dx() {
		draw.Copy(canvas, image.Point{}, frame, src, draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), frame, src, draw.Src, nil)
	}
	return canvas
}

// DecodeDataURI reverses EncodeDataURI.
func DecodeDataURI(uri string) (image.Image, error) {
	if len(uri) < len(dataURIPrefix) || uri[:len(dataURIPrefix)] != dataURIPrefix {
		return nil, image.ErrFormat
	}
	raw, err := base64.StdEncoding.DecodeString(uri[len(dataURIPrefix):])
	if err != nil {
		return nil, err
	}
	return jpeg.Decode(bytes.NewReader(raw))
}
