// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// PeriodEntry is one reading inside a profile period list (supplemented
// per SPEC_FULL.md: the distilled spec's MessageBody union names
// GetProfilePack/GetProfileList without expanding their period-list leaf
// shape).
type PeriodEntry struct {
	ObjName        []byte
	Unit           uint8
	Scaler         int8
	Value          Value
	ValueSignature []byte
}

// ProfilePeriodList groups one reporting period's entries under a
// reference time and reporting interval, inside a GetProfilePackResponse.
type ProfilePeriodList struct {
	ActTimeOrPeriod Time
	RegPeriod       uint32
	Periods         []PeriodEntry
}

// GetProfilePackRequest is SML_GetProfilePack_Req: a bulk historical
// profile read spanning a time range, across a batch of period lists.
type GetProfilePackRequest struct {
	ServerID          []byte
	Username          []byte
	Password          []byte
	WithRawData       bool
	BeginTime         *Time
	EndTime           *Time
	ParameterTreePath [][]byte
	ObjectList        [][]byte
	DasDetails        *Value
}

func (*GetProfilePackRequest) Type() MessageBodyType { return MessageTypeGetProfilePackRequest }

// GetProfilePackResponse is SML_GetProfilePack_Res.
type GetProfilePackResponse struct {
	ServerID          []byte
	ActTime           Time
	RegPeriod         uint32
	ParameterTreePath [][]byte
	HeaderList        [][]byte
	PeriodLists       []ProfilePeriodList
	RawData           []byte
	ProfileSignature  []byte
}

func (*GetProfilePackResponse) Type() MessageBodyType { return MessageTypeGetProfilePackResponse }

// GetProfileListRequest is SML_GetProfileList_Req: the single-period
// counterpart to GetProfilePackRequest.
type GetProfileListRequest struct {
	ServerID          []byte
	Username          []byte
	Password          []byte
	WithRawData       bool
	BeginTime         *Time
	EndTime           *Time
	ParameterTreePath [][]byte
	ObjectList        [][]byte
	DasDetails        *Value
}

func (*GetProfileListRequest) Type() MessageBodyType { return MessageTypeGetProfileListRequest }

// GetProfileListResponse is SML_GetProfileList_Res.
type GetProfileListResponse struct {
	ServerID          []byte
	ActTime           Time
	RegPeriod         uint32
	ParameterTreePath [][]byte
	ValTime           Time
	Status            uint64
	PeriodList        []PeriodEntry
	RawData           []byte
	PeriodSignature   []byte
}

func (*GetProfileListResponse) Type() MessageBodyType { return MessageTypeGetProfileListResponse }
