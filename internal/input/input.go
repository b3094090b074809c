// Package input reads piped stdin content for the generate command. Reads
// are bounded by a context deadline so a hung pipe cannot stall the CLI.
package input

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/wexinc/breakdown/internal/errors"
)

// DefaultTimeout bounds a stdin read when the caller sets no deadline.
const DefaultTimeout = 30 * time.Second

// IsPiped reports whether f is receiving piped or redirected input rather
// than an interactive terminal.
func IsPiped(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// readResult carries the outcome of the background read.
type readResult struct {
	text string
	err  error
}

// Read consumes all of r, bounded by ctx. On a context timeout the partial
// read is discarded and a timeout error is returned; the goroutine draining
// r is left to finish on its own.
func Read(ctx context.Context, r io.Reader) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- readResult{text: string(data), err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", errors.Wrap(res.err, errors.ErrMissingInput, "failed to read stdin")
		}
		return res.text, nil
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), errors.ErrMissingInput, "timed out reading stdin")
	}
}

// ReadStdin reads piped stdin with the given timeout, or DefaultTimeout when
// timeout is zero. It returns empty content without error when stdin is an
// interactive terminal.
func ReadStdin(ctx context.Context, timeout time.Duration) (string, error) {
	if !IsPiped(os.Stdin) {
		return "", nil
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return Read(ctx, os.Stdin)
}
