// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// OpenRequest is SML_PublicOpen_Req: the client's session-open handshake.
type OpenRequest struct {
	Codepage   []byte
	ClientID   []byte
	ReqFileID  []byte
	ServerID   []byte
	Username   []byte
	Password   []byte
	SMLVersion *uint8
}

func (*OpenRequest) Type() MessageBodyType { return MessageTypeOpenRequest }

// OpenResponse is SML_PublicOpen_Res: the meter's session-open reply.
type OpenResponse struct {
	Codepage   []byte
	ClientID   []byte
	ReqFileID  []byte
	ServerID   []byte
	RefTime    *Time
	SMLVersion *uint8
}

func (*OpenResponse) Type() MessageBodyType { return MessageTypeOpenResponse }

// CloseRequest is SML_PublicClose_Req: the session-close handshake.
type CloseRequest struct {
	GlobalSignature []byte
}

func (*CloseRequest) Type() MessageBodyType { return MessageTypeCloseRequest }

// CloseResponse is SML_PublicClose_Res.
type CloseResponse struct {
	GlobalSignature []byte
}

func (*CloseResponse) Type() MessageBodyType { return MessageTypeCloseResponse }
