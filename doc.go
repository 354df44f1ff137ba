// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sml decodes the Smart Message Language (SML) as defined by
// SML v1.04 (BSI TR-03109 Annex). SML is the binary protocol emitted by
// modern German electricity meters over an optical (IR) or wired serial
// link.
//
// Semantics and design:
//   - Two-layer decoder: a transport v1 framing layer (escape-based
//     envelope, CRC16/X.25 protected) locates message boundaries and
//     unescapes the payload; an SML data-type parser reconstructs the
//     typed message tree from the TLV-like inner encoding.
//   - Byte Source abstraction: the decoder never buffers ahead of what
//     it has consumed. Callers supply a ByteSource (an io.Reader
//     adapter, an in-memory slice, or a serial port) and the decoder
//     pulls one byte at a time, surfacing WouldBlock/Eof/IoError as
//     control-flow signals rather than fatal conditions.
//   - Borrowed or owned outputs: with an owned-growable buffer policy,
//     parsed message fields are independent heap copies; with a
//     caller-supplied fixed buffer, fields are zero-copy views into
//     that buffer, valid only until the next ReadNext call. The payload
//     store is then never allocated by the decoder; the parsed message
//     structs and their entry slices are still heap-allocated.
//
// Wire format (transport v1): start sequence 1B1B1B1B 01010101, an
// escaped payload (any literal 1B1B1B1B doubled on the wire), and an
// end sequence 1B1B1B1B 1A pp cc cc, where pp is a 0-3 zero-padding
// count and cc cc is the little-endian CRC16/X.25 over all preceding
// escaped bytes excluding the CRC itself.
//
// Domain interpretation of OBIS identifiers, unit tables, and
// scaler/value physics is explicitly out of scope: fields are surfaced
// verbatim for higher layers to interpret.
package sml
