// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import "github.com/GiterLab/crc16"

// x25Table is computed once at init time from the well-known CRC16/X.25
// parameter set (poly 0x1021, init 0xFFFF, reflected in/out, xorout
// 0xFFFF) that BSI TR-03109's transport v1 envelope mandates.
var x25Table = crc16.MakeTable(crc16.CRC16_X_25)

// crcAccumulator is an incremental CRC16/X.25 engine fed one byte at a
// time by the framing state machine, per §4.B's no-alloc streaming
// requirement. The zero value is not usable; construct with
// newCRCAccumulator.
type crcAccumulator struct {
	crc uint16
}

func newCRCAccumulator() crcAccumulator {
	return crcAccumulator{crc: crc16.Init(crc16.CRC16_X_25)}
}

func (a *crcAccumulator) update(b byte) {
	a.crc = crc16.Update(a.crc, x25Table, []byte{b})
}

// sum finalizes the accumulator (applying xorout) without consuming
// further bytes; callers may keep accumulating afterward only by
// discarding the returned snapshot, since Complete is idempotent over
// the X.25 parameter set's xorout.
func (a *crcAccumulator) sum() uint16 {
	return crc16.Complete(a.crc, crc16.CRC16_X_25)
}
