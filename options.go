// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// ParseMode selects how much work the Reader facade does per frame, per
// spec §6.
type ParseMode uint8

const (
	// ParseModeTransport yields only the raw unescaped payload; callers
	// parse it themselves (or don't, for pass-through relaying).
	ParseModeTransport ParseMode = iota
	// ParseModeParse fully parses the payload into a Message tree.
	ParseModeParse
)

// PaddingPolicy governs how the transport layer treats a frame whose
// trailing padding bytes are non-zero, per spec §6.
type PaddingPolicy uint8

const (
	// PaddingReject treats non-zero padding bytes as a structural error.
	PaddingReject PaddingPolicy = iota
	// PaddingTolerate accepts the frame anyway and flags it
	// (Outcome.Tolerated / Event.Tolerated), for field meters known to
	// emit non-zero padding.
	PaddingTolerate
)

// BufferPolicy selects the unescaped-payload backing store, per spec §6
// (Owned(max_bytes) | Borrowed(slice)). Owned grows on the heap up to
// max_bytes; Borrowed stores the payload in a caller-supplied slice and
// drives the parser's borrowed (zero-copy) leaf mode. In both cases the
// parsed message structs and their entry slices are heap-allocated.
type BufferPolicy struct {
	owned    bool
	max      int
	borrowed []byte
}

// OwnedBuffer selects a heap-growable buffer capped at maxBytes.
func OwnedBuffer(maxBytes int) BufferPolicy {
	return BufferPolicy{owned: true, max: maxBytes}
}

// BorrowedBuffer selects a fixed, caller-owned backing slice. Parsed
// message fields become zero-copy views into it, valid only until the
// next ReadNext call.
func BorrowedBuffer(scratch []byte) BufferPolicy {
	return BufferPolicy{owned: false, borrowed: scratch, max: cap(scratch)}
}

// Options configures a Reader. Build with functional options, not direct
// struct literals, per the teacher's convention (options.go/netopts.go).
type Options struct {
	Buffer        BufferPolicy
	ParseMode     ParseMode
	PaddingPolicy PaddingPolicy
	Logger        Logger
}

var defaultOptions = Options{
	Buffer:        OwnedBuffer(2048),
	ParseMode:     ParseModeParse,
	PaddingPolicy: PaddingReject,
	Logger:        noopLogger{},
}

// Option configures a Reader at construction time.
type Option func(*Options)

// WithBufferPolicy overrides the default owned 2048-byte buffer.
func WithBufferPolicy(p BufferPolicy) Option {
	return func(o *Options) { o.Buffer = p }
}

// WithParseMode overrides the default (ParseModeParse).
func WithParseMode(m ParseMode) Option {
	return func(o *Options) { o.ParseMode = m }
}

// WithPaddingPolicy overrides the default (PaddingReject).
func WithPaddingPolicy(p PaddingPolicy) Option {
	return func(o *Options) { o.PaddingPolicy = p }
}

// WithLogger installs a Logger for non-fatal diagnostics
// (DiscardedBytes, tolerated padding). The default is a no-op.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSerialDefaults configures sane defaults for an optical/IR head or
// RS-485 meter link: a 2048-byte owned buffer (typical SML frames run
// several hundred bytes to a little over a kilobyte per spec §5) and
// tolerant padding, since field meters are known to emit non-zero
// padding on occasion.
func WithSerialDefaults() Option {
	return func(o *Options) {
		o.Buffer = OwnedBuffer(2048)
		o.PaddingPolicy = PaddingTolerate
	}
}

// WithFileDefaults configures a larger owned buffer suitable for
// replaying captured meter dumps from disk, with strict padding
// validation (a corrupt capture should fail loudly, not silently).
func WithFileDefaults() Option {
	return func(o *Options) {
		o.Buffer = OwnedBuffer(8192)
		o.PaddingPolicy = PaddingReject
	}
}

// WithSliceDefaults configures the Reader to keep the unescaped payload
// in the caller-supplied slice and to return every parsed octet-string
// leaf as a view into it. The parsed message tree itself (structs and
// entry slices) is still allocated on the heap.
func WithSliceDefaults(scratch []byte) Option {
	return func(o *Options) {
		o.Buffer = BorrowedBuffer(scratch)
		o.ParseMode = ParseModeParse
	}
}
