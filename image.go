package pixsvg

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pixsvg/pixsvg/utils"
)

// supportedExtensions lists the raster file extensions the converter accepts.
var supportedExtensions = []string{
	".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp",
}

// SupportedExtension reports whether ext (including the leading dot,
// case-insensitive) is a raster format the converter can decode.
func SupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range supportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// decodeImage decodes the source file into a non-premultiplied RGBA buffer
// with its origin at (0, 0). The decoded pixels are owned by the caller and
// discarded after the conversion; nothing is cached between calls.
func decodeImage(src string) (*image.NRGBA, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the source file: %w", err)
	}
	defer file.Close()

	ctype, err := utils.DetectFileContentType(file.Name())
	if err != nil {
		return nil, err
	}
	// The sniffer knows no TIFF signature and reports such files as
	// application/octet-stream; an inconclusive answer is left to the
	// decoder, which rejects non-image content on its own.
	if ctype != "application/octet-stream" && !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("%s is not an image file", ctype)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source file: %w", err)
	}

	// Clone normalizes any decoded image type to *image.NRGBA with a
	// zero-origin bounds rectangle, preserving the alpha channel exactly.
	return imaging.Clone(img), nil
}
