package usecase

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// Default thumbnail parameters.
const (
	// DefaultThumbnailWidth is the fixed width of driver photo thumbnails.
	DefaultThumbnailWidth = 100

	// DefaultThumbnailQuality is the JPEG quality of re-encoded thumbnails.
	DefaultThumbnailQuality = 75
)

// Thumbnailer downscales raw image bytes for presentation.
// Implementations must degrade gracefully: when the input cannot be decoded
// or re-encoded they return the original bytes unchanged, never an error.
type Thumbnailer interface {
	Thumbnail(src []byte) []byte
}

// JPEGThumbnailer produces fixed-width JPEG thumbnails, preserving the
// source aspect ratio.
type JPEGThumbnailer struct {
	width   int
	quality int
}

// NewJPEGThumbnailer creates a thumbnailer with the given width and JPEG
// quality. Non-positive values fall back to the defaults.
func NewJPEGThumbnailer(width, quality int) *JPEGThumbnailer {
	if width <= 0 {
		width = DefaultThumbnailWidth
	}
	if quality <= 0 {
		quality = DefaultThumbnailQuality
	}
	return &JPEGThumbnailer{width: width, quality: quality}
}

// Thumbnail implements Thumbnailer. Height 0 lets the resize keep the
// aspect ratio.
func (t *JPEGThumbnailer) Thumbnail(src []byte) []byte {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return src
	}

	thumb := imaging.Resize(img, t.width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(t.quality)); err != nil {
		return src
	}
	return buf.Bytes()
}

// Ensure JPEGThumbnailer implements Thumbnailer at compile time.
var _ Thumbnailer = (*JPEGThumbnailer)(nil)
