package pixsvg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// lockFileName is the advisory lock held on the output directory while a
// batch is running, so two batches never interleave writes into it.
const lockFileName = ".pixsvg.lock"

// Status tags the result of converting a single input file.
type Status int

const (
	// StatusConverted means the SVG file was generated and written.
	StatusConverted Status = iota
	// StatusSkipped means the output file already existed and was left
	// untouched. Re-running a batch never overwrites a conversion.
	StatusSkipped
	// StatusError means the input could not be converted. The batch
	// continues with the remaining files regardless.
	StatusError
)

// String implements the Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	default:
		return "error"
	}
}

var (
	// ErrMissingInput is reported when an input path no longer exists at
	// conversion time.
	ErrMissingInput = errors.New("input file no longer exists")

	// ErrOutputCollision is reported when two distinct inputs in one batch
	// map to the same output file name after extension stripping.
	ErrOutputCollision = errors.New("output name already claimed by another input")
)

// Outcome is the per-input result of a batch conversion.
type Outcome struct {
	// Input is the source path the outcome belongs to.
	Input string
	// Output is the destination path. It is empty for error outcomes.
	Output string
	// Status tags the outcome.
	Status Status
	// Err carries the failure cause for StatusError outcomes, nil otherwise.
	Err error
}

// Detail returns a short human-readable description of the outcome,
// suitable for the result log the frontend displays.
func (o Outcome) Detail() string {
	switch o.Status {
	case StatusConverted:
		return fmt.Sprintf("converted to %s", filepath.Base(o.Output))
	case StatusSkipped:
		return fmt.Sprintf("%s already exists", filepath.Base(o.Output))
	default:
		return o.Err.Error()
	}
}

// ConvertBatch converts every input path into an SVG file inside the output
// directory and returns one Outcome per input, in input order. Per-file
// failures become error outcomes and never abort the batch; the returned
// error is non-nil only for batch-fatal conditions, reported before any file
// is processed: the output directory cannot be created, or another batch
// holds its lock.
//
// Inputs are processed by a bounded worker pool. Files are independent, so
// the only cross-file coordination is the output-name claim: names are
// claimed sequentially in input order before any worker starts, which makes
// the collision policy deterministic regardless of scheduling. Cancelling
// the context stops the batch before the next file; inputs that were not
// started report the context error as their outcome.
func (p *Processor) ConvertBatch(ctx context.Context, paths []string) ([]Outcome, error) {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create the output directory: %w", err)
	}

	lock := flock.New(filepath.Join(p.OutputDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not lock the output directory: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another conversion is already running in %s", p.OutputDir)
	}
	defer lock.Unlock()

	// Claim output names in input order. The first input owns the name;
	// a later occurrence of the same input is treated as already done,
	// while a different input mapping to the same stem is a collision.
	type claim int
	const (
		claimOwned claim = iota
		claimDuplicate
		claimCollision
	)
	owners := make(map[string]string, len(paths))
	outputs := make([]string, len(paths))
	claims := make([]claim, len(paths))
	for i, src := range paths {
		out := p.outputPath(src)
		outputs[i] = out
		owner, taken := owners[out]
		switch {
		case !taken:
			owners[out] = src
		case owner == src:
			claims[i] = claimDuplicate
		default:
			claims[i] = claimCollision
		}
	}

	results := make([]Outcome, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(p.workers())
	for w := 0; w < p.workers(); w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = Outcome{Input: paths[i], Status: StatusError, Err: err}
					continue
				}
				switch claims[i] {
				case claimDuplicate:
					results[i] = Outcome{Input: paths[i], Output: outputs[i], Status: StatusSkipped}
				case claimCollision:
					results[i] = Outcome{
						Input:  paths[i],
						Status: StatusError,
						Err:    fmt.Errorf("%s: %w", filepath.Base(outputs[i]), ErrOutputCollision),
					}
				default:
					results[i] = p.convert(paths[i], outputs[i])
				}
			}
		}()
	}

	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			results[i] = Outcome{Input: paths[i], Status: StatusError, Err: ctx.Err()}
		}
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

// convert produces the outcome for a single owned input path.
func (p *Processor) convert(src, dst string) Outcome {
	if _, err := os.Stat(src); err != nil {
		return Outcome{Input: src, Status: StatusError, Err: ErrMissingInput}
	}
	if _, err := os.Stat(dst); err == nil {
		return Outcome{Input: src, Output: dst, Status: StatusSkipped}
	}
	if err := p.ConvertFile(src, dst); err != nil {
		return Outcome{Input: src, Status: StatusError, Err: err}
	}
	return Outcome{Input: src, Output: dst, Status: StatusConverted}
}

// ClearSummary reports what a ClearOutputs call accomplished.
type ClearSummary struct {
	// Removed counts the files that were deleted.
	Removed int
	// Failed counts the files whose deletion failed.
	Failed int
	// RemovedDir reports whether the emptied directory itself was removed.
	RemovedDir bool
}

// ClearOutputs deletes every file directly inside dir, then removes the
// directory itself once it is empty. Subdirectories are never entered or
// removed. Deletion is best-effort: a file that cannot be deleted is counted
// and skipped, never aborting the cleanup of the remaining files. A missing
// directory yields a zero summary.
func ClearOutputs(dir string) ClearSummary {
	var sum ClearSummary

	entries, err := os.ReadDir(dir)
	if err != nil {
		return sum
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			sum.Failed++
			continue
		}
		sum.Removed++
	}
	if err := os.Remove(dir); err == nil {
		sum.RemovedDir = true
	}
	return sum
}
