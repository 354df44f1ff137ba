// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// buffer is the unescaped-payload backing store for one in-flight frame.
// A single type serves both buffer policies from spec §6
// (buffer: Owned(max_bytes) | Borrowed(slice)): owned buffers start nil
// and grow by append up to max; borrowed buffers start as a zero-length
// slice of a caller-supplied fixed array, so every push within max stays
// inside that array's capacity and never reallocates.
type buffer struct {
	data []byte
	max  int
}

func newOwnedBuffer(maxBytes int) *buffer {
	return &buffer{max: maxBytes}
}

func newBorrowedBuffer(scratch []byte) *buffer {
	return &buffer{data: scratch[:0], max: cap(scratch)}
}

func (b *buffer) push(x byte) error {
	if len(b.data) >= b.max {
		return ErrOutOfMemory
	}
	b.data = append(b.data, x)
	return nil
}

func (b *buffer) reset() { b.data = b.data[:0] }

func (b *buffer) bytes() []byte { return b.data }

func (b *buffer) len() int { return len(b.data) }

// truncate drops the last n bytes, used to strip the trailing zero-padding
// run once the wire-level padding count is known.
func (b *buffer) truncate(n int) { b.data = b.data[:len(b.data)-n] }
