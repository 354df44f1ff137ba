// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import "testing"

func TestCRCAccumulatorCheckValue(t *testing.T) {
	// The CRC16/X.25 parameter set's published check value for the ASCII
	// string "123456789" is 0x906E.
	a := newCRCAccumulator()
	for _, b := range []byte("123456789") {
		a.update(b)
	}
	if got, want := a.sum(), uint16(0x906E); got != want {
		t.Fatalf("sum() = %#04x, want %#04x", got, want)
	}
}

func TestCRCAccumulatorEmpty(t *testing.T) {
	a := newCRCAccumulator()
	if got, want := a.sum(), uint16(0x0000); got != want {
		t.Fatalf("sum() over no bytes = %#04x, want %#04x", got, want)
	}
}
