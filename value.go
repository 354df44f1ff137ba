// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// ValueKind tags the active field of a Value.
type ValueKind uint8

const (
	ValueOctetString ValueKind = iota
	ValueBool
	ValueInt
	ValueUint
	ValueList
)

// Value is a generic SML_Value: any scalar or nested list the TLV grammar
// can produce, used wherever the structural grammar leaves the leaf type
// open (ListEntry.Value, PeriodEntry.Value, SML_ProcParValue's scalar
// case). Domain interpretation of the bytes (OBIS meaning, unit, scaling)
// is left to the caller per spec Non-goals.
type Value struct {
	Kind   ValueKind
	Octets []byte
	Bool   bool
	Int    int64
	Uint   uint64
	List   []Value
}
