package pixsvg

import (
	"image"
	"image/color"
)

// Run is a maximal horizontal span of identically colored, non-transparent
// pixels on a single image row. Runs on a row never overlap and are ordered
// by their starting column; together with the fully transparent pixels they
// cover the row exactly once.
type Run struct {
	// Y is the image row the run belongs to.
	Y int
	// X is the starting column of the run.
	X int
	// Width is the number of pixels the run spans. It is always >= 1.
	Width int
	// Color holds the exact, non-premultiplied RGBA value shared by
	// every pixel of the run.
	Color color.NRGBA
}

// EncodeRuns scans the image row by row, left to right, and collects the
// horizontal runs of the raster. Pixels with a zero alpha channel are
// skipped entirely and never produce a run; a run ends at the first pixel
// whose RGBA quadruple differs from the run color, at a fully transparent
// pixel, or at the row boundary.
//
// The image is expected to have its origin at (0, 0), which is what
// decodeImage produces.
func EncodeRuns(img *image.NRGBA) []Run {
	var (
		bounds = img.Bounds()
		dx     = bounds.Dx()
		dy     = bounds.Dy()
		runs   []Run
	)

	for y := 0; y < dy; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+dx*4]

		for x := 0; x < dx; {
			a := row[x*4+3]
			if a == 0 {
				x++
				continue
			}
			start := x
			r, g, b := row[x*4+0], row[x*4+1], row[x*4+2]
			x++
			for x < dx &&
				row[x*4+0] == r &&
				row[x*4+1] == g &&
				row[x*4+2] == b &&
				row[x*4+3] == a {
				x++
			}
			runs = append(runs, Run{
				Y:     y,
				X:     start,
				Width: x - start,
				Color: color.NRGBA{R: r, G: g, B: b, A: a},
			})
		}
	}

	return runs
}
