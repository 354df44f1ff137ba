// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// ListEntry is one SML_ListEntry: a single reading, keyed by OBIS object
// name, inside a GetListResponse.
type ListEntry struct {
	ObjName        []byte
	Status         *uint64
	ValTime        *Time
	Unit           *uint8
	Scaler         *int8
	Value          Value
	ValueSignature []byte
}

// GetListRequest is SML_GetList_Req.
type GetListRequest struct {
	ClientID []byte
	ServerID []byte
	Username []byte
	Password []byte
	ListName []byte
}

func (*GetListRequest) Type() MessageBodyType { return MessageTypeGetListRequest }

// GetListResponse is SML_GetList_Res: the most common payload in
// everyday meter traffic, a snapshot of current register values.
type GetListResponse struct {
	ClientID       []byte
	ServerID       []byte
	ListName       []byte
	ActSensorTime  *Time
	ValList        []ListEntry
	ListSignature  []byte
	ActGatewayTime *Time
}

func (*GetListResponse) Type() MessageBodyType { return MessageTypeGetListResponse }
