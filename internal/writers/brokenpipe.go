package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader closed its end of the
// pipe. PB fasta and table output routinely gets piped into head or less;
// the consumer hanging up early is a clean exit, not a write failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
