// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// transportState enumerates the framing state machine's positions, per
// spec §4.B.
type transportState uint8

const (
	stateLookingForStart transportState = iota
	stateReadingStart
	stateInPayload
	stateInEscape
	stateConfirmLiteral
	stateReadingPadAndCrc
)

// startPattern is the eight-byte transport v1 start sequence:
// 1B1B1B1B 01010101. Its first four bytes also begin the end sequence
// (1B1B1B1B 1A pp cc cc); InEscape disambiguates that case.
var startPattern = [8]byte{0x1B, 0x1B, 0x1B, 0x1B, 0x01, 0x01, 0x01, 0x01}

// padCrcStep indexes the three trailing bytes read once the 0x1A end
// marker has been seen: the padding count, then the little-endian
// CRC16's low byte, then its high byte.
const (
	padCrcStepPad = iota
	padCrcStepCRCLo
	padCrcStepCRCHi
)

// Decoder runs the transport v1 framing state machine over a ByteSource,
// producing one Event per call to Next. It holds all state needed to
// suspend at a WouldBlock outcome and resume exactly where it left off.
type Decoder struct {
	state        transportState
	startMatched int
	escapeCount  int
	confirmCount int
	padCrcStep   int
	pad          int
	crcLo, crcHi byte
	discarded    int
	crc          crcAccumulator
	payload      *buffer
	padding      PaddingPolicy
}

func newDecoder(buf *buffer, padding PaddingPolicy) *Decoder {
	return &Decoder{payload: buf, padding: padding}
}

// EventKind classifies what one Decoder.Next call produced.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventWouldBlock
	EventEOF
	EventDiscardedBytes
	EventFrameReady
)

// Event reports the outcome of one framing step. N is valid only for
// EventDiscardedBytes. Tolerated is valid only for EventFrameReady and
// is true when the frame was accepted despite non-zero padding bytes
// under PaddingTolerate.
type Event struct {
	Kind      EventKind
	N         int
	Tolerated bool
}

// Next pulls bytes from src until it can report a frame, a non-fatal
// diagnostic, a flow-control signal, or a structural error. On
// WouldBlock, all decoder state is preserved so the next call resumes
// mid-frame without losing progress.
func (d *Decoder) Next(src ByteSource) (Event, error) {
	for {
		b, outcome, err := src.ReadByte()
		switch outcome {
		case SourceWouldBlock:
			return Event{Kind: EventWouldBlock}, nil
		case SourceEOF:
			return Event{Kind: EventEOF}, nil
		case SourceIOError:
			return Event{}, &ByteSourceError{Err: err}
		}
		ev, ferr := d.feed(b)
		if ferr != nil || ev.Kind != EventNone {
			return ev, ferr
		}
	}
}

// Payload returns the current frame's unescaped, pad-stripped bytes.
// The returned slice is a view that is invalidated the next time a new
// frame begins (see spec §3 "Lifecycle and ownership"); callers using
// ParseMode Transport must consume or copy it before the next Next call.
func (d *Decoder) Payload() []byte { return d.payload.bytes() }

// Reset discards any in-flight frame and returns to LookingForStart, for
// use after an idle period or a caller-detected desync.
func (d *Decoder) Reset() {
	d.state = stateLookingForStart
	d.startMatched = 0
	d.escapeCount = 0
	d.confirmCount = 0
	d.padCrcStep = 0
	d.pad = 0
	d.discarded = 0
}

// feed advances the state machine by exactly one wire byte.
func (d *Decoder) feed(b byte) (Event, error) {
	switch d.state {
	case stateLookingForStart:
		return d.feedLookingForStart(b)
	case stateReadingStart:
		return d.feedReadingStart(b)
	case stateInPayload:
		return d.feedInPayload(b)
	case stateInEscape:
		return d.feedInEscape(b)
	case stateConfirmLiteral:
		return d.feedConfirmLiteral(b)
	case stateReadingPadAndCrc:
		return d.feedReadingPadAndCrc(b)
	}
	return Event{}, nil
}

func (d *Decoder) feedLookingForStart(b byte) (Event, error) {
	if b == 0x1B {
		d.beginStart()
		return Event{}, nil
	}
	if b == 0x00 {
		// Some meters emit trailing 0x00 bytes after a frame's CRC;
		// tolerated silently rather than counted as discarded junk.
		return Event{}, nil
	}
	d.discarded++
	return Event{}, nil
}

func (d *Decoder) beginStart() {
	d.crc = newCRCAccumulator()
	d.crc.update(0x1B)
	d.startMatched = 1
	d.state = stateReadingStart
	d.payload.reset()
}

func (d *Decoder) feedReadingStart(b byte) (Event, error) {
	d.crc.update(b)
	if b == startPattern[d.startMatched] {
		d.startMatched++
		if d.startMatched == len(startPattern) {
			d.state = stateInPayload
			if d.discarded > 0 {
				ev := Event{Kind: EventDiscardedBytes, N: d.discarded}
				d.discarded = 0
				return ev, nil
			}
		}
		return Event{}, nil
	}
	// Mismatch: everything matched so far, plus this byte, was junk
	// unless this byte itself restarts a fresh start sequence.
	junk := d.startMatched + 1
	d.startMatched = 0
	d.state = stateLookingForStart
	if b == 0x1B {
		junk--
		d.discarded += junk
		d.beginStart()
		return Event{}, nil
	}
	d.discarded += junk
	return Event{}, nil
}

func (d *Decoder) feedInPayload(b byte) (Event, error) {
	d.crc.update(b)
	if b == 0x1B {
		d.escapeCount = 1
		d.state = stateInEscape
		return Event{}, nil
	}
	if err := d.payload.push(b); err != nil {
		d.Reset()
		return Event{}, err
	}
	return Event{}, nil
}

func (d *Decoder) feedInEscape(b byte) (Event, error) {
	d.crc.update(b)
	if d.escapeCount < 4 {
		if b == 0x1B {
			d.escapeCount++
			return Event{}, nil
		}
		// A run of fewer than four 1B bytes is ordinary payload data.
		for i := 0; i < d.escapeCount; i++ {
			if err := d.payload.push(0x1B); err != nil {
				d.Reset()
				return Event{}, err
			}
		}
		d.state = stateInPayload
		if err := d.payload.push(b); err != nil {
			d.Reset()
			return Event{}, err
		}
		return Event{}, nil
	}
	// The fifth byte disambiguates a doubled literal 1B1B1B1B from the
	// genuine end-marker escape. A literal is encoded on the wire as the
	// escape-open quadruple followed by one more full quadruple of
	// 1B bytes (the escaped data itself); this fifth byte is the first
	// byte of that second quadruple, so confirming it requires reading
	// three more before the literal can be emitted.
	switch b {
	case 0x1B:
		d.state = stateConfirmLiteral
		d.confirmCount = 1
		return Event{}, nil
	case 0x1A:
		d.state = stateReadingPadAndCrc
		d.padCrcStep = padCrcStepPad
		return Event{}, nil
	case 0x01, 0x02, 0x03:
		code := b
		d.Reset()
		return Event{}, &AbortedError{Code: code}
	default:
		d.Reset()
		return Event{}, ErrInvalidEscape
	}
}

// feedConfirmLiteral consumes the second 1B1B1B1B quadruple of an
// escaped literal run. Every byte here is wire data covered by the CRC;
// once all four are confirmed, exactly one literal 1B1B1B1B is emitted
// to the payload and the machine returns to ordinary payload scanning.
func (d *Decoder) feedConfirmLiteral(b byte) (Event, error) {
	d.crc.update(b)
	if b != 0x1B {
		d.Reset()
		return Event{}, ErrInvalidEscape
	}
	d.confirmCount++
	if d.confirmCount < 4 {
		return Event{}, nil
	}
	for i := 0; i < 4; i++ {
		if err := d.payload.push(0x1B); err != nil {
			d.Reset()
			return Event{}, err
		}
	}
	d.state = stateInPayload
	return Event{}, nil
}

func (d *Decoder) feedReadingPadAndCrc(b byte) (Event, error) {
	switch d.padCrcStep {
	case padCrcStepPad:
		d.crc.update(b)
		if b > 3 {
			pp := int(b)
			d.Reset()
			return Event{}, &InvalidPaddingError{PP: pp}
		}
		d.pad = int(b)
		d.padCrcStep = padCrcStepCRCLo
		return Event{}, nil
	case padCrcStepCRCLo:
		// The transmitted CRC itself is excluded from the CRC input.
		d.crcLo = b
		d.padCrcStep = padCrcStepCRCHi
		return Event{}, nil
	case padCrcStepCRCHi:
		d.crcHi = b
		return d.finalizeFrame()
	}
	return Event{}, nil
}

// EncodeFrame wraps a pre-built payload in a transport v1 envelope: the
// start sequence, the payload with any literal 1B1B1B1B run doubled
// (the mirror image of ConfirmLiteral), zero padding out to a 4-byte
// boundary, the end marker, and the little-endian CRC16/X.25 computed
// over every preceding escaped byte. Per spec §1, only this framing
// envelope is synthesised here; SML data structures are not encoded.
func EncodeFrame(payload []byte) []byte {
	pad := (4 - len(payload)%4) % 4

	crc := newCRCAccumulator()
	out := make([]byte, 0, len(startPattern)+len(payload)+pad+8)

	out = append(out, startPattern[:]...)
	for _, b := range startPattern {
		crc.update(b)
	}

	i := 0
	for i < len(payload) {
		if i+4 <= len(payload) && isLiteralEscapeRun(payload[i:i+4]) {
			// Double the run: an escape-open quadruple followed by the
			// literal quadruple itself, per ConfirmLiteral's wire format.
			for k := 0; k < 2; k++ {
				for _, b := range startPattern[:4] {
					out = append(out, b)
					crc.update(b)
				}
			}
			i += 4
			continue
		}
		out = append(out, payload[i])
		crc.update(payload[i])
		i++
	}
	for k := 0; k < pad; k++ {
		out = append(out, 0x00)
		crc.update(0x00)
	}

	for _, b := range startPattern[:4] {
		out = append(out, b)
		crc.update(b)
	}
	out = append(out, 0x1A)
	crc.update(0x1A)
	out = append(out, byte(pad))
	crc.update(byte(pad))

	sum := crc.sum()
	out = append(out, byte(sum), byte(sum>>8))
	return out
}

func isLiteralEscapeRun(b []byte) bool {
	return b[0] == 0x1B && b[1] == 0x1B && b[2] == 0x1B && b[3] == 0x1B
}

func (d *Decoder) finalizeFrame() (Event, error) {
	received := uint16(d.crcLo) | uint16(d.crcHi)<<8
	computed := d.crc.sum()
	if computed != received {
		d.Reset()
		return Event{}, &CrcMismatchError{Expected: received, Actual: computed}
	}
	if d.pad > 0 {
		if d.payload.len() < d.pad {
			d.Reset()
			return Event{}, &InvalidPaddingError{PP: d.pad}
		}
		tail := d.payload.bytes()[d.payload.len()-d.pad:]
		nonZero := false
		for _, p := range tail {
			if p != 0 {
				nonZero = true
				break
			}
		}
		d.payload.truncate(d.pad)
		if nonZero {
			d.state = stateLookingForStart
			if d.padding == PaddingReject {
				return Event{}, &InvalidPaddingError{PP: d.pad, InvalidPaddingBytes: true}
			}
			return Event{Kind: EventFrameReady, Tolerated: true}, nil
		}
	}
	d.state = stateLookingForStart
	return Event{Kind: EventFrameReady}, nil
}
