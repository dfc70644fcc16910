package pixsvg

import (
	"encoding/base64"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtension(t *testing.T) {
	assert := assert.New(t)

	for _, ext := range []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"} {
		assert.True(SupportedExtension(ext), ext)
	}
	assert.True(SupportedExtension(".PNG"))
	assert.False(SupportedExtension(".svg"))
	assert.False(SupportedExtension(".txt"))
	assert.False(SupportedExtension(""))
}

func TestDecodeImage_NormalizesToZeroOrigin(t *testing.T) {
	assert := assert.New(t)

	src := filepath.Join(t.TempDir(), "fixture.png")
	writeImage(t, src, redGreenImage())

	img, err := decodeImage(src)
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, 3, 1), img.Bounds())
}

func TestDecodeImage_PreservesAlphaChannel(t *testing.T) {
	assert := assert.New(t)

	fixture := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	setPx(fixture, 0, 0, color.NRGBA{R: 0xff, A: 0x80})
	// pixel (1, 0) stays fully transparent

	src := filepath.Join(t.TempDir(), "alpha.png")
	writeImage(t, src, fixture)

	img, err := decodeImage(src)
	assert.NoError(err)
	assert.Equal(fixture.Pix, img.Pix)
}

func TestDecodeImage_DecodesEveryEncodableCodec(t *testing.T) {
	fixture := redGreenImage()

	// The content sniffer has no signature for some of these formats and
	// reports them as application/octet-stream; they must still reach the
	// registered decoder instead of being rejected up front.
	for _, ext := range []string{".png", ".jpg", ".bmp", ".tif", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			assert := assert.New(t)

			src := filepath.Join(t.TempDir(), "fixture"+ext)
			writeImage(t, src, fixture)

			img, err := decodeImage(src)
			assert.NoError(err)
			assert.Equal(fixture.Bounds(), img.Bounds())
			if ext != ".jpg" {
				// Lossless formats reproduce the pixel buffer exactly.
				assert.Equal(fixture.Pix, img.Pix)
			}
		})
	}
}

// minimalWebP is a valid 1×1 lossy WebP file. The webp codec is
// decode-only, so the fixture cannot be produced by an encoder here.
const minimalWebP = "UklGRiQAAABXRUJQVlA4IBgAAAAwAQCdASoBAAEAAwA0JaQAA3AA/vuUAAA="

func TestDecodeImage_DecodesWebP(t *testing.T) {
	assert := assert.New(t)

	data, err := base64.StdEncoding.DecodeString(minimalWebP)
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "dot.webp")
	require.NoError(t, os.WriteFile(src, data, 0644))

	img, err := decodeImage(src)
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, 1, 1), img.Bounds())
}

func TestDecodeImage_RejectsNonImageContent(t *testing.T) {
	assert := assert.New(t)

	src := filepath.Join(t.TempDir(), "fake.png")
	assert.NoError(os.WriteFile(src, []byte("this is not an image at all"), 0644))

	_, err := decodeImage(src)
	assert.Error(err)
}

func TestDecodeImage_MissingFile(t *testing.T) {
	_, err := decodeImage(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}
