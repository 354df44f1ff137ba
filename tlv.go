// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// maxTLBytes bounds the continuation-bit chain for one type/length
// header: a header plus up to four continuation bytes covers lengths far
// beyond any realistic SML element, per spec §4.C.
const maxTLBytes = 5

// ElementType is the SML TLV type nibble.
type ElementType uint8

const (
	TypeOctetString ElementType = 0
	TypeBoolean     ElementType = 4
	TypeInt         ElementType = 5
	TypeUint        ElementType = 6
	TypeList        ElementType = 7
)

// tlKind distinguishes an ordinary type/length header from the two
// reserved single-byte sentinels.
type tlKind uint8

const (
	tlValue tlKind = iota
	tlEndOfList
	tlOptionalAbsent
)

// tlHeader is the decoded form of one TL header. length is the total
// byte count including the header itself for scalars, or the element
// count for lists. tlLen is the number of wire bytes the header itself
// occupied.
type tlHeader struct {
	kind   tlKind
	typ    ElementType
	length int
	tlLen  int
}

// decodeTL reads one TL header starting at buf[pos]. It does not
// validate that length bytes actually remain in buf; callers check that
// when slicing the data region.
func decodeTL(buf []byte, pos int) (tlHeader, error) {
	if pos >= len(buf) {
		return tlHeader{}, ErrUnexpectedEOF
	}
	b0 := buf[pos]
	if b0 == 0x00 {
		return tlHeader{kind: tlEndOfList, tlLen: 1}, nil
	}
	if b0 == 0x01 {
		return tlHeader{kind: tlOptionalAbsent, tlLen: 1}, nil
	}
	typ := ElementType((b0 >> 4) & 0x7)
	length := int(b0 & 0x0F)
	n := 1
	cur := b0
	for cur&0x80 != 0 {
		if n >= maxTLBytes {
			return tlHeader{}, ErrIntegerTooWide
		}
		if pos+n >= len(buf) {
			return tlHeader{}, ErrUnexpectedEOF
		}
		cur = buf[pos+n]
		length = (length << 4) | int(cur&0x0F)
		n++
	}
	switch typ {
	case TypeOctetString, TypeBoolean, TypeInt, TypeUint, TypeList:
	default:
		return tlHeader{}, &UnexpectedTypeError{Actual: byte(typ)}
	}
	return tlHeader{kind: tlValue, typ: typ, length: length, tlLen: n}, nil
}

// decodeUint widens a big-endian byte string of up to 8 bytes to uint64.
func decodeUint(data []byte) (uint64, error) {
	if len(data) > 8 {
		return 0, ErrIntegerTooWide
	}
	var v uint64
	for _, b := range data {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// decodeInt widens a big-endian two's-complement byte string of 1-8
// bytes to int64, sign-extending from the most significant byte.
func decodeInt(data []byte) (int64, error) {
	if len(data) == 0 || len(data) > 8 {
		return 0, ErrIntegerTooWide
	}
	v := int64(int8(data[0]))
	for _, b := range data[1:] {
		v = v<<8 | int64(b)
	}
	return v, nil
}
