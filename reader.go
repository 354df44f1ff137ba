// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import "errors"

// OutcomeKind classifies what one Reader.ReadNext call produced.
type OutcomeKind uint8

const (
	OutcomeMessage OutcomeKind = iota
	OutcomeDiscardedBytes
	OutcomeTransportError
	OutcomeParseError
	OutcomeWouldBlock
	OutcomeEOF
)

// Outcome is the result of one ReadNext call. Only the fields relevant
// to Kind are meaningful:
//   - OutcomeMessage: Message (ParseModeParse) or Payload (ParseModeTransport).
//   - OutcomeDiscardedBytes: DiscardedBytes.
//   - OutcomeTransportError, OutcomeParseError: Err.
type Outcome struct {
	Kind           OutcomeKind
	Message        *Message
	Payload        []byte
	DiscardedBytes int
	Tolerated      bool
	Err            error
}

// Reader composes the Byte Source, transport framing, and (optionally)
// the message parser into the single facade operation spec §6
// describes: read_next().
type Reader struct {
	src  ByteSource
	dec  *Decoder
	opts Options
}

// NewReader builds a Reader over src, applying opts in order over
// defaultOptions (owned 2048-byte buffer, ParseModeParse,
// PaddingReject, no-op logger).
func NewReader(src ByteSource, opts ...Option) *Reader {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	var buf *buffer
	if o.Buffer.owned {
		buf = newOwnedBuffer(o.Buffer.max)
	} else {
		buf = newBorrowedBuffer(o.Buffer.borrowed)
	}
	return &Reader{
		src:  src,
		dec:  newDecoder(buf, o.PaddingPolicy),
		opts: o,
	}
}

// ReadNext advances the decoder by however many bytes it takes to
// report one frame, one non-fatal diagnostic, or a flow-control signal.
// Suspension on WouldBlock happens at exactly one point; calling
// ReadNext again resumes mid-frame with no lost progress.
func (r *Reader) ReadNext() Outcome {
	ev, err := r.dec.Next(r.src)
	if err != nil {
		var bse *ByteSourceError
		if errors.As(err, &bse) {
			r.opts.Logger.Warn("byte source error", "err", bse.Err)
		} else {
			r.opts.Logger.Warn("transport error", "err", err)
		}
		return Outcome{Kind: OutcomeTransportError, Err: err}
	}
	switch ev.Kind {
	case EventWouldBlock:
		return Outcome{Kind: OutcomeWouldBlock}
	case EventEOF:
		return Outcome{Kind: OutcomeEOF}
	case EventDiscardedBytes:
		r.opts.Logger.Debug("discarded bytes resyncing to next frame", "n", ev.N)
		return Outcome{Kind: OutcomeDiscardedBytes, DiscardedBytes: ev.N}
	case EventFrameReady:
		if ev.Tolerated {
			r.opts.Logger.Warn("frame accepted with non-zero padding bytes", "tolerated", true)
		}
		payload := r.dec.Payload()
		if r.opts.ParseMode == ParseModeTransport {
			return Outcome{Kind: OutcomeMessage, Payload: payload, Tolerated: ev.Tolerated}
		}
		msg, perr := ParseMessage(payload, r.opts.Buffer.owned)
		if perr != nil {
			r.opts.Logger.Warn("parse error", "err", perr)
			return Outcome{Kind: OutcomeParseError, Err: perr}
		}
		return Outcome{Kind: OutcomeMessage, Message: msg, Tolerated: ev.Tolerated}
	}
	return Outcome{Kind: OutcomeEOF}
}

// Reset discards any in-flight frame and returns the underlying decoder
// to LookingForStart, for use after an idle period or a caller-detected
// desync.
func (r *Reader) Reset() { r.dec.Reset() }

// IntoByteSource releases and returns the underlying ByteSource, leaving
// the Reader unusable. Useful when a caller wants to hand the same
// connection to different protocol handling after SML traffic ends.
func (r *Reader) IntoByteSource() ByteSource {
	src := r.src
	r.src = nil
	return src
}
