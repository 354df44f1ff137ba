// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import (
	"errors"
	"testing"
)

func TestDecodeTLSentinels(t *testing.T) {
	h, err := decodeTL([]byte{0x00}, 0)
	if err != nil || h.kind != tlEndOfList || h.tlLen != 1 {
		t.Fatalf("end-of-list: got %+v, %v", h, err)
	}
	h, err = decodeTL([]byte{0x01}, 0)
	if err != nil || h.kind != tlOptionalAbsent || h.tlLen != 1 {
		t.Fatalf("optional-absent: got %+v, %v", h, err)
	}
}

func TestDecodeTLScalar(t *testing.T) {
	// type octet-string (0x0), total length 4: TL byte 0x04, 3 data bytes.
	h, err := decodeTL([]byte{0x04, 0xAA, 0xBB, 0xCC}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.kind != tlValue || h.typ != TypeOctetString || h.length != 4 || h.tlLen != 1 {
		t.Fatalf("got %+v", h)
	}
}

func TestDecodeTLList(t *testing.T) {
	// type list (0x7), element count 6: TL byte 0x76.
	h, err := decodeTL([]byte{0x76}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.kind != tlValue || h.typ != TypeList || h.length != 6 {
		t.Fatalf("got %+v", h)
	}
}

func TestDecodeTLContinuation(t *testing.T) {
	// continuation bit chains two TL bytes: 0xE6 (continuation, type uint
	// 0x6 in bits 6-4, length nibble 0x6) then 0x12, both length nibbles
	// concatenated.
	h, err := decodeTL([]byte{0xE6, 0x12}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.tlLen != 2 || h.typ != TypeUint || h.length != 0x62 {
		t.Fatalf("got %+v", h)
	}
}

func TestDecodeTLTooWide(t *testing.T) {
	// Five TL bytes all carrying the continuation bit: the chain would need
	// a sixth byte, one more than maxTLBytes allows.
	buf := []byte{0x80 | 0x06, 0x80, 0x80, 0x80, 0x80}
	if _, err := decodeTL(buf, 0); !errors.Is(err, ErrIntegerTooWide) {
		t.Fatalf("got err %v, want ErrIntegerTooWide", err)
	}
}

func TestDecodeTLUnknownType(t *testing.T) {
	// type nibble 0x1 and 0x2 are reserved, not among the five valid kinds.
	if _, err := decodeTL([]byte{0x12}, 0); err == nil {
		t.Fatal("expected error for reserved type nibble")
	}
}

func TestDecodeTLTruncated(t *testing.T) {
	if _, err := decodeTL(nil, 0); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("got %v, want ErrUnexpectedEOF", err)
	}
	if _, err := decodeTL([]byte{0x86}, 0); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("got %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecodeUint(t *testing.T) {
	v, err := decodeUint([]byte{0x01, 0x00})
	if err != nil || v != 256 {
		t.Fatalf("got %d, %v, want 256", v, err)
	}
	if _, err := decodeUint(make([]byte, 9)); !errors.Is(err, ErrIntegerTooWide) {
		t.Fatalf("got %v, want ErrIntegerTooWide", err)
	}
}

func TestDecodeInt(t *testing.T) {
	v, err := decodeInt([]byte{0xFF})
	if err != nil || v != -1 {
		t.Fatalf("got %d, %v, want -1", v, err)
	}
	v, err = decodeInt([]byte{0x00, 0x80})
	if err != nil || v != 128 {
		t.Fatalf("got %d, %v, want 128", v, err)
	}
	if _, err := decodeInt(nil); !errors.Is(err, ErrIntegerTooWide) {
		t.Fatalf("got %v, want ErrIntegerTooWide for empty data", err)
	}
}
