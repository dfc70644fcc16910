package pixsvg

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// WriteSVG serializes the encoded runs as a well-formed SVG document where
// each run becomes a one-pixel-tall <rect> element. The output is fully
// deterministic: converting the same pixels twice produces byte-identical
// documents.
//
// The root element carries the image dimensions, a matching viewBox and the
// crispEdges rendering hint, so viewers draw the rectangles as sharp pixel
// blocks instead of smoothing their edges.
func WriteSVG(w io.Writer, width, height int, runs []Run) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\" shape-rendering=\"crispEdges\">\n",
		width, height, width, height)

	for _, r := range runs {
		fmt.Fprintf(bw, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"1\" fill=\"%s\"",
			r.X, r.Y, r.Width, FillHex(r.Color))
		// A fully opaque fill carries no opacity attribute. This is a pure
		// size optimization: consumers must treat the absent attribute and
		// fill-opacity="1.000000" as equivalent.
		if r.Color.A < 0xff {
			fmt.Fprintf(bw, " fill-opacity=\"%.6f\"", FillOpacity(r.Color))
		}
		fmt.Fprint(bw, "/>\n")
	}
	fmt.Fprint(bw, "</svg>\n")

	return bw.Flush()
}

// FillHex maps the RGB channels of a run color to the uppercase
// #RRGGBB form used for the rect fill attribute.
func FillHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// FillOpacity maps the alpha channel of a run color to a fractional
// opacity in the [0, 1] range.
func FillOpacity(c color.NRGBA) float64 {
	return float64(c.A) / 255.0
}
