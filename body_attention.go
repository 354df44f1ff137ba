// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// AttentionResponse is SML_Attention_Res: an out-of-band diagnostic or
// error notification from the meter, identified by an OBIS-shaped
// attention number (supplemented per SPEC_FULL.md: distinct from a
// generic status code, plus an optional nested message body giving
// context).
type AttentionResponse struct {
	ServerID         []byte
	AttentionNumber  []byte
	AttentionMessage []byte
	AttentionDetails MessageBody
}

func (*AttentionResponse) Type() MessageBodyType { return MessageTypeAttentionResponse }
