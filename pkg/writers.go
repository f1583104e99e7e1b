package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes every chunk to all of its writers; a failing writer
// does not stop the others, its error is combined into the returned one.
type TeeWriter struct {
	writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{writers: writers}
}

func (tw *TeeWriter) Len() int {
	return len(tw.writers)
}

// Write reports len(p) as long as at least one writer took the whole chunk,
// so log libraries don't treat a broken file as a short write on stdout.
func (tw *TeeWriter) Write(p []byte) (int, error) {
	var (
		err       error
		delivered bool
	)
	for _, w := range tw.writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		delivered = true
	}
	if !delivered {
		return 0, err
	}
	return len(p), err
}
