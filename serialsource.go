// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import (
	"time"

	"go.bug.st/serial"
)

// SerialPort is the subset of go.bug.st/serial.Port this adapter needs.
// go.bug.st/serial's documented behaviour is that a Read whose configured
// read timeout elapses with no bytes available returns (0, nil), not an
// error — exactly the "no progress without waiting" shape ByteSource
// needs for a nonblocking peripheral.
type SerialPort interface {
	Read(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
}

// readTimeout bounds how long one poll of the optical/IR head or RS-485
// adapter blocks before OpenSerialPort's port reports WouldBlock. SML
// meters transmit a whole frame in well under a second; 200ms keeps
// polling responsive without busy-spinning the caller's goroutine.
const readTimeout = 200 * time.Millisecond

// OpenSerialPort opens portName at baudRate with the 8E1 framing SML
// meters conventionally use, configures its read timeout, and returns it
// wrapped as a ByteSource. The caller is responsible for closing the
// returned serial.Port once done.
func OpenSerialPort(portName string, baudRate int) (ByteSource, serial.Port, error) {
	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.EvenParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, nil, err
	}
	return FromSerialPort(port), port, nil
}

// serialSource adapts a go.bug.st/serial.Port (or compatible fake, for
// tests) into a ByteSource.
type serialSource struct {
	port SerialPort
	buf  [1]byte
}

// FromSerialPort wraps an optical/IR head or RS-485 adapter opened via
// go.bug.st/serial as a ByteSource. Callers should configure a short read
// timeout on port (serial.Mode.ReadTimeout, or a later SetReadTimeout
// call) so that WouldBlock is surfaced promptly instead of the adapter's
// ReadByte blocking the caller's goroutine indefinitely.
func FromSerialPort(port SerialPort) ByteSource { return &serialSource{port: port} }

func (s *serialSource) ReadByte() (byte, SourceOutcome, error) {
	n, err := s.port.Read(s.buf[:])
	if err != nil {
		return 0, SourceIOError, err
	}
	if n == 0 {
		return 0, SourceWouldBlock, nil
	}
	return s.buf[0], SourceReady, nil
}
