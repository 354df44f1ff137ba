// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import (
	"errors"
	"testing"
	"time"
)

// fakeSerialPort emulates go.bug.st/serial.Port's documented read-timeout
// behaviour: a timed-out Read returns (0, nil), never an error.
type fakeSerialPort struct {
	data    []byte
	pos     int
	timeout time.Duration
	failAt  int
	failErr error
	calls   int
}

func (f *fakeSerialPort) SetReadTimeout(t time.Duration) error {
	f.timeout = t
	return nil
}

func (f *fakeSerialPort) Read(p []byte) (int, error) {
	f.calls++
	if f.failErr != nil && f.calls == f.failAt {
		return 0, f.failErr
	}
	if f.pos >= len(f.data) {
		return 0, nil // timed out, no data yet
	}
	n := copy(p, f.data[f.pos:f.pos+1])
	f.pos++
	return n, nil
}

func TestSerialSourceReadsByte(t *testing.T) {
	port := &fakeSerialPort{data: []byte{0x42}}
	src := FromSerialPort(port)
	b, outcome, err := src.ReadByte()
	if err != nil || outcome != SourceReady || b != 0x42 {
		t.Fatalf("got %d,%v,%v", b, outcome, err)
	}
}

func TestSerialSourceWouldBlockOnTimeout(t *testing.T) {
	port := &fakeSerialPort{}
	src := FromSerialPort(port)
	_, outcome, err := src.ReadByte()
	if err != nil || outcome != SourceWouldBlock {
		t.Fatalf("got %v,%v, want SourceWouldBlock", outcome, err)
	}
}

func TestSerialSourceIOError(t *testing.T) {
	wantErr := errors.New("port unplugged")
	port := &fakeSerialPort{failAt: 1, failErr: wantErr}
	src := FromSerialPort(port)
	_, outcome, err := src.ReadByte()
	if outcome != SourceIOError || !errors.Is(err, wantErr) {
		t.Fatalf("got %v,%v, want SourceIOError wrapping %v", outcome, err, wantErr)
	}
}

func TestOpenSerialPortRejectsUnknownDevice(t *testing.T) {
	// No such device exists in any test environment; this exercises the
	// real go.bug.st/serial.Open error path without needing real hardware.
	if _, _, err := OpenSerialPort("/dev/does-not-exist-sml", 9600); err == nil {
		t.Fatal("expected an error opening a nonexistent serial device")
	}
}
