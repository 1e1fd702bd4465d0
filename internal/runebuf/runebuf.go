/*
Package runebuf implements the text buffer the reordering algorithms operate on.

A Buffer is a mutable sequence of runes. Reordering rules move short
contiguous runs of runes around; such moves keep the length of the buffer
and are performed in place, touching only the runes of the span. Splices
which change the length (ligature merges) shift the tail of the buffer.

Buffers are short-lived, one per conversion call. To avoid allocating
them over and over again they are pooled. A buffer borrowed from the pool is
owned exclusively by the borrower until it is released.
*/
package runebuf

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/bijoy/internal/tracing"
)

// Buffer is a mutable sequence of runes.
type Buffer struct {
	runes   []rune
	scratch []rune // temporary storage for in-place moves
}

// New creates a buffer holding the runes of s.
func New(s string) *Buffer {
	b := &Buffer{}
	b.Reset(s)
	return b
}

// Reset replaces the content of b with the runes of s.
func (b *Buffer) Reset(s string) {
	b.runes = b.runes[:0]
	for _, r := range s {
		b.runes = append(b.runes, r)
	}
}

// Len returns the number of runes in b.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// At returns the rune at position i, or 0 if i is out of range.
// Rune 0 does not belong to any of the classes the reordering rules test for.
func (b *Buffer) At(i int) rune {
	if i < 0 || i >= len(b.runes) {
		return 0
	}
	return b.runes[i]
}

// String returns the content of b as a Go string.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Runes returns a copy of the runes in [from…to), clipped to the bounds of b.
func (b *Buffer) Runes(from, to int) []rune {
	from, to = b.clip(from, to)
	r := make([]rune, to-from)
	copy(r, b.runes[from:to])
	return r
}

// Splice replaces the runes in [from…to) by repl. Bounds are clipped to the
// buffer. Splice returns the change in length of b, i.e. len(repl) minus the
// number of runes removed.
func (b *Buffer) Splice(from, to int, repl ...rune) int {
	from, to = b.clip(from, to)
	removed := to - from
	if len(repl) == removed {
		copy(b.runes[from:to], repl)
		return 0
	}
	tail := append(b.scratch[:0], b.runes[to:]...)
	b.scratch = tail
	b.runes = append(append(b.runes[:from], repl...), tail...)
	delta := len(repl) - removed
	tracing.Tracer().Debugf("runebuf: splice [%d…%d) changed length by %d", from, to, delta)
	return delta
}

// Move moves the runes of [from…to) to be inserted before position at, where
// at must not be inside the span. Length is unchanged. Move returns the new
// start position of the moved span.
func (b *Buffer) Move(from, to, at int) int {
	from, to = b.clip(from, to)
	if at < 0 {
		at = 0
	} else if at > len(b.runes) {
		at = len(b.runes)
	}
	if from >= to || (at >= from && at <= to) {
		return from
	}
	span := append(b.scratch[:0], b.runes[from:to]...)
	b.scratch = span
	n := to - from
	if at < from { // shift [at…from) right by n
		copy(b.runes[at+n:to], b.runes[at:from])
		copy(b.runes[at:at+n], span)
		return at
	}
	// at > to: shift [to…at) left by n
	copy(b.runes[from:at-n], b.runes[to:at])
	copy(b.runes[at-n:at], span)
	return at - n
}

// Swap exchanges the runes at positions i and j. Positions out of range are
// ignored.
func (b *Buffer) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(b.runes) || j >= len(b.runes) {
		return
	}
	b.runes[i], b.runes[j] = b.runes[j], b.runes[i]
}

func (b *Buffer) clip(from, to int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > len(b.runes) {
		to = len(b.runes)
	}
	if to < from {
		to = from
	}
	return from, to
}

// Simple stringer for debugging purposes.
func (b *Buffer) GoString() string {
	return fmt.Sprintf("runebuf%q", b.runes)
}

// --- Pooling ---------------------------------------------------------------

type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Buffer{runes: make([]rune, 0, 256)}, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// Borrow returns a pooled buffer holding the runes of s. Clients must call
// Release when they are done with the buffer.
func Borrow(s string) *Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		tracing.Tracer().Errorf("runebuf: cannot borrow buffer from pool: %v", err)
		return New(s)
	}
	b := o.(*Buffer)
	b.Reset(s)
	return b
}

// Release clears b and puts it back into the pool. b must not be used
// afterwards.
func Release(b *Buffer) {
	if b == nil {
		return
	}
	b.runes = b.runes[:0]
	b.scratch = b.scratch[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, b)
}
