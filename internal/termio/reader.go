package termio

import (
	"bufio"
	"io"
)

// CodepointReader reads one UTF-8 code point at a time from the
// controlling terminal's input descriptor, determining the continuation
// length from the lead byte.
type CodepointReader struct {
	r *bufio.Reader
}

// NewCodepointReader wraps r for rune-at-a-time reads.
func NewCodepointReader(r io.Reader) *CodepointReader {
	return &CodepointReader{r: bufio.NewReaderSize(r, 4096)}
}

// ReadRune blocks until one full code point is available and returns it.
// An invalid lead byte yields unicode.ReplacementChar with size 1, matching
// bufio.Reader's own recovery behavior.
func (c *CodepointReader) ReadRune() (rune, int, error) {
	return c.r.ReadRune()
}

// Buffered reports how many bytes are queued without blocking.
func (c *CodepointReader) Buffered() int {
	return c.r.Buffered()
}
