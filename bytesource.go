// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import (
	"errors"
	"io"

	"code.hybscloud.com/iox"
)

// SourceOutcome is the result of one ByteSource.ReadByte call, per spec
// §4.A: "reports one of four outcomes". Only SourceReady carries a valid
// byte.
type SourceOutcome uint8

const (
	SourceReady SourceOutcome = iota
	SourceWouldBlock
	SourceEOF
	SourceIOError
)

// ByteSource is the one-operation contract the decoder pulls from: "give
// me the next byte, or tell me why you can't yet." Implementations must
// never block past what the caller expects (a blocking stream reader may
// block; a nonblocking peripheral must not).
type ByteSource interface {
	ReadByte() (b byte, outcome SourceOutcome, err error)
}

// readerSource adapts any io.Reader into a ByteSource, one byte at a
// time. iox.ErrWouldBlock from the underlying reader surfaces as
// SourceWouldBlock; io.EOF surfaces as SourceEOF; anything else is
// SourceIOError.
type readerSource struct {
	r   io.Reader
	buf [1]byte
}

// FromReader wraps r as a ByteSource for blocking byte-stream readers
// (files, TCP connections, pipes).
func FromReader(r io.Reader) ByteSource { return &readerSource{r: r} }

func (s *readerSource) ReadByte() (byte, SourceOutcome, error) {
	n, err := s.r.Read(s.buf[:])
	if n > 0 {
		return s.buf[0], SourceReady, nil
	}
	switch {
	case err == nil:
		// Zero-progress, nil-error reads are nonconforming per io.Reader's
		// contract but occur in practice; treat as not-yet-ready rather
		// than looping the caller into a busy spin.
		return 0, SourceWouldBlock, nil
	case errors.Is(err, iox.ErrWouldBlock):
		return 0, SourceWouldBlock, nil
	case errors.Is(err, io.EOF):
		return 0, SourceEOF, nil
	default:
		return 0, SourceIOError, err
	}
}

// sliceSource adapts a fixed in-memory byte slice into a ByteSource,
// per §4.A's mandatory in-memory-slice adapter.
type sliceSource struct {
	data []byte
	pos  int
}

// FromBytes wraps data as a ByteSource that yields EOF once exhausted.
func FromBytes(data []byte) ByteSource { return &sliceSource{data: data} }

func (s *sliceSource) ReadByte() (byte, SourceOutcome, error) {
	if s.pos >= len(s.data) {
		return 0, SourceEOF, nil
	}
	b := s.data[s.pos]
	s.pos++
	return b, SourceReady, nil
}
