package spelling

import (
	"fmt"

	"fortio.org/safecast"

	"svfacts/internal/source"
)

// cursor walks the bytes of one file.
type cursor struct {
	file  *source.File
	off   uint32
	limit uint32
}

func newCursor(f *source.File) cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	return cursor{file: f, limit: limit}
}

func (c *cursor) eof() bool { return c.off >= c.limit }

// peekAt returns the byte n positions ahead, or 0 past the end.
func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.file.Content[c.off+n]
}

func (c *cursor) peek() byte { return c.peekAt(0) }

func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.file.Content[c.off] == b {
		c.off++
		return true
	}
	return false
}

func (c *cursor) eatWhile(pred func(byte) bool) {
	for !c.eof() && pred(c.file.Content[c.off]) {
		c.off++
	}
}

func (c *cursor) spanFrom(start uint32) source.Span {
	return source.Span{File: c.file.ID, Start: start, End: c.off}
}

func (c *cursor) textFrom(start uint32) string {
	return string(c.file.Content[start:c.off])
}

// remaining returns up to n bytes starting at the cursor.
func (c *cursor) remaining(n int) string {
	end := c.off
	for i := 0; i < n && end < c.limit; i++ {
		end++
	}
	return string(c.file.Content[c.off:end])
}
