// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// File is a sequence of Messages decoded from one transport frame's
// unescaped payload (spec §3's top-level File concept).
type File struct {
	Messages []Message
}

// Message is one SML_Message: a six-field envelope around a typed body.
type Message struct {
	TransactionID []byte
	GroupNo       uint8
	AbortOnError  uint8
	Body          MessageBody
	CRC16         uint16
}

// MessageBodyType is the wire tag selecting a Message's body shape,
// following libSML's well-known 0x00000100 constant family (BSI
// TR-03109-1 Annex); spec.md names the body variants without enumerating
// their wire ids, so these are supplemented per SPEC_FULL.md.
type MessageBodyType uint32

const (
	MessageTypeOpenRequest              MessageBodyType = 0x00000100
	MessageTypeOpenResponse             MessageBodyType = 0x00000101
	MessageTypeCloseRequest             MessageBodyType = 0x00000200
	MessageTypeCloseResponse            MessageBodyType = 0x00000201
	MessageTypeGetProfilePackRequest    MessageBodyType = 0x00000300
	MessageTypeGetProfilePackResponse   MessageBodyType = 0x00000301
	MessageTypeGetProfileListRequest    MessageBodyType = 0x00000400
	MessageTypeGetProfileListResponse   MessageBodyType = 0x00000401
	MessageTypeGetProcParameterRequest  MessageBodyType = 0x00000500
	MessageTypeGetProcParameterResponse MessageBodyType = 0x00000501
	MessageTypeSetProcParameterRequest  MessageBodyType = 0x00000600
	MessageTypeGetListRequest           MessageBodyType = 0x00000700
	MessageTypeGetListResponse          MessageBodyType = 0x00000701
	MessageTypeAttentionResponse        MessageBodyType = 0x0000FF01
)

// MessageBody is implemented by every concrete SML message body type.
// Type returns the wire tag that selects this shape.
type MessageBody interface {
	Type() MessageBodyType
}
