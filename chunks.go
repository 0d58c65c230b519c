package rekson

import "io"

// defaultChunkSize is the default fixed buffer size the chunk reader pulls
// from its source.
const defaultChunkSize = 256

// ChunkReader pulls fixed-size byte slices out of an io.Reader, yielding
// each buffer as soon as it's filled or the source is exhausted. A read
// error is treated the same as a clean EOF: the stream just ends early,
// truncating as if EOF had been reached at that point. Once the underlying
// source is drained, ChunkReader yields one final single-byte chunk holding
// the 0x00 sentinel so the lexer sees Close(File) without a separate code
// path, then reports exhaustion.
type ChunkReader struct {
	r         io.Reader
	size      int
	exhausted bool
	sentinel  bool
}

// NewChunkReader wraps r, reading in chunks of size bytes. size <= 0 falls
// back to defaultChunkSize.
func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if size <= 0 {
		size = defaultChunkSize
	}

	return &ChunkReader{r: r, size: size}
}

// Next returns the next chunk of input, or ok == false once the sentinel
// byte has already been handed out. The returned slice is only valid
// until the next call to Next.
func (c *ChunkReader) Next() (chunk []byte, ok bool) {
	if c.sentinel {
		return nil, false
	}

	if c.exhausted {
		c.sentinel = true
		return []byte{0}, true
	}

	buf := make([]byte, c.size)

	n, err := io.ReadFull(c.r, buf)
	if err != nil {
		c.exhausted = true
	}

	if n == 0 {
		c.exhausted, c.sentinel = true, true
		return []byte{0}, true
	}

	return buf[:n], true
}
