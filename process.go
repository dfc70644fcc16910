package pixsvg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// Processor holds the conversion options shared by a batch run.
type Processor struct {
	// OutputDir is the flat directory every generated SVG file lands in.
	// It is created on demand when a batch starts.
	OutputDir string
	// Workers is the number of files converted concurrently. Zero or a
	// negative value selects runtime.NumCPU().
	Workers int
}

// workers returns the effective worker count, clamped to maxWorkers.
func (p *Processor) workers() int {
	w := p.Workers
	if w <= 0 || w > maxWorkers {
		w = runtime.NumCPU()
	}
	return min(w, maxWorkers)
}

// ConvertFile decodes the source image, encodes it as horizontal pixel runs
// and writes the SVG document to dst. The write is atomic: the document is
// assembled in a temporary file next to dst and renamed into place only
// after it has been fully written and flushed, so a failure at any point
// leaves no partial artifact behind.
func (p *Processor) ConvertFile(src, dst string) error {
	img, err := decodeImage(src)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	runs := EncodeRuns(img)

	tmp := filepath.Join(filepath.Dir(dst),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(dst), uuid.NewString()))
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("could not create the output file: %w", err)
	}

	if err := WriteSVG(out, bounds.Dx(), bounds.Dy(), runs); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write the output file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not flush the output file: %w", err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not finalize the output file: %w", err)
	}
	return nil
}

// outputPath maps an input file to its destination inside the output
// directory: the input stem with a .svg extension.
func (p *Processor) outputPath(src string) string {
	base := filepath.Base(src)
	stem := base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(p.OutputDir, stem+".svg")
}
