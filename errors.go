// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import (
	"errors"
	"fmt"
	"io"

	"code.hybscloud.com/iox"
)

// Flow-control sentinels, re-exported so callers never need to import iox
// directly. These are not failures: ErrWouldBlock means "no further
// progress without waiting"; io.EOF means the byte source is exhausted.
var (
	ErrWouldBlock = iox.ErrWouldBlock
	ErrEOF        = io.EOF
)

// Transport-layer sentinel errors without per-instance fields.
var (
	// ErrInvalidEscape is returned when an escape sequence's four 0x1B
	// bytes are not followed by one of 0x1B, 0x1A, 0x01, 0x02, or 0x03.
	ErrInvalidEscape = errors.New("sml: invalid escape sequence")

	// ErrOutOfMemory is returned when an unescaped payload would exceed
	// the configured buffer capacity.
	ErrOutOfMemory = errors.New("sml: payload exceeds buffer capacity")

	// ErrUnexpectedEOF is returned when the parser runs out of bytes
	// mid-structure.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrIntegerTooWide is returned when a TLV scalar's data length
	// exceeds 8 bytes, the widest integer this decoder widens to. The
	// same error is returned for a signed integer with no data bytes and
	// for a type/length header chain longer than maxTLBytes.
	ErrIntegerTooWide = errors.New("sml: integer width exceeds 8 bytes")
)

// CrcMismatchError reports a failed CRC16/X.25 check over a received
// frame. Expected is the value transmitted on the wire; Actual is the
// value the decoder computed over the escaped bytes it consumed.
type CrcMismatchError struct {
	Expected, Actual uint16
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("sml: crc mismatch: wire %#04x, computed %#04x", e.Expected, e.Actual)
}

// InvalidPaddingError reports a padding violation at the end of a frame.
// PP is the padding count as read from the wire (0-3 if structurally
// valid). InvalidPaddingBytes is true when PP itself was in range but the
// trailing bytes it names were not all zero.
type InvalidPaddingError struct {
	PP                  int
	InvalidPaddingBytes bool
}

func (e *InvalidPaddingError) Error() string {
	if e.InvalidPaddingBytes {
		return fmt.Sprintf("sml: non-zero padding bytes (pp=%d)", e.PP)
	}
	return fmt.Sprintf("sml: invalid padding count pp=%d", e.PP)
}

// AbortedError reports a transmission-abort escape code (0x01, 0x02, or
// 0x03) in place of the normal 0x1A end marker.
type AbortedError struct{ Code byte }

func (e *AbortedError) Error() string {
	return fmt.Sprintf("sml: transmission aborted, code %#02x", e.Code)
}

// ByteSourceError wraps an I/O error surfaced verbatim from a ByteSource.
type ByteSourceError struct{ Err error }

func (e *ByteSourceError) Error() string { return fmt.Sprintf("sml: byte source error: %v", e.Err) }
func (e *ByteSourceError) Unwrap() error { return e.Err }

// UnexpectedTypeError reports a TLV element whose type tag did not match
// what the structural grammar at that position required.
type UnexpectedTypeError struct {
	Expected, Actual byte
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("sml: unexpected element type %#x, want %#x", e.Actual, e.Expected)
}

// ListLengthMismatchError reports a list whose declared element count did
// not match the fixed arity the structural grammar requires at that
// position.
type ListLengthMismatchError struct {
	Expected, Actual int
}

func (e *ListLengthMismatchError) Error() string {
	return fmt.Sprintf("sml: list length mismatch: want %d elements, got %d", e.Expected, e.Actual)
}

// UnknownMessageTypeError reports a message body tag this decoder does
// not recognize. The content is still consumed so the parser stays
// synchronized with the rest of the file.
type UnknownMessageTypeError struct{ ID uint32 }

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("sml: unknown message type %#08x", e.ID)
}

// MissingRequiredFieldError reports a field the grammar marks mandatory
// that was encoded as absent (TL byte 0x01) on the wire.
type MissingRequiredFieldError struct{ Name string }

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("sml: missing required field %q", e.Name)
}
