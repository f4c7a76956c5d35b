package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanOutWriter copies every write to all of its writers. A failing writer does
// not stop the others; all failures come back combined.
type FanOutWriter struct {
	writers []io.Writer
}

func NewFanOutWriter(writers ...io.Writer) *FanOutWriter {
	return &FanOutWriter{writers: writers}
}

// Write reports len(p) as long as at least one writer took the whole of p.
func (fw *FanOutWriter) Write(p []byte) (int, error) {
	var err error
	delivered := false
	for _, w := range fw.writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n == len(p) {
			delivered = true
		}
	}

	if !delivered {
		return 0, err
	}
	return len(p), err
}
