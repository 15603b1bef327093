package yars

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/easel/yars/libdiff"
)

// ErrMissingFile reports a path that does not exist.
var ErrMissingFile = errors.New("File not found")

// FileResult is the outcome of formatting one file.
type FileResult struct {
	Path         string
	Changed      bool
	LinesChanged int
	Err          error
}

// Options configure a formatting run over many files.
type Options struct {
	// CheckOnly leaves files untouched and only reports what a write
	// would change.
	CheckOnly bool
	// Jobs caps concurrent workers; 0 means one per CPU.
	Jobs uint
}

// FormatFile canonicalizes the document in path, rewriting the file in
// place when its text changes. With checkOnly set the file is left
// untouched and the result reports what a write would have done.
func FormatFile(path string, checkOnly bool) (FileResult, error) {
	res := FileResult{Path: path}
	if _, err := os.Stat(path); err != nil {
		return res, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("Failed to read %s: %v", path, err)
	}
	original := string(d)
	formatted, err := FormatString(original)
	if err != nil {
		return res, err
	}
	if formatted == original {
		return res, nil
	}
	res.Changed = true
	res.LinesChanged = libdiff.LineCount(original, formatted)
	if checkOnly {
		return res, nil
	}
	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		return res, fmt.Errorf("Failed to write %s: %v", path, err)
	}
	return res, nil
}

// FormatFiles formats paths concurrently. Results come back in input
// order with per-file failures recorded on the result, so one bad file
// never hides the others. Cancelling ctx abandons undispatched paths.
func FormatFiles(ctx context.Context, paths []string, opts Options) []FileResult {
	results := make([]FileResult, len(paths))
	jobs := int(opts.Jobs)
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(paths) && len(paths) > 0 {
		jobs = len(paths)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					results[i] = FileResult{Path: path, Err: gctx.Err()}
					return nil
				default:
				}
				res, err := FormatFile(path, opts.CheckOnly)
				res.Err = err
				results[i] = res
				return nil
			}
		}(i, path))
	}
	// Workers never return errors; per-file failures land in results.
	_ = g.Wait()
	return results
}
