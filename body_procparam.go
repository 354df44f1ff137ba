// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// ProcParamValueKind tags the active field of a ProcParameterValue.
type ProcParamValueKind uint8

const (
	ProcParamValueScalar ProcParamValueKind = iota
	ProcParamValuePeriodList
	ProcParamValueTime
)

// ProcParameterValue is SML_ProcParValue: a configuration-tree leaf that
// may hold a plain value, an embedded period list, or a time, depending
// on the parameter's own semantics (those semantics are OBIS/vendor
// specific and out of scope per Non-goals).
type ProcParameterValue struct {
	Kind       ProcParamValueKind
	Value      *Value
	PeriodList []PeriodEntry
	Time       *Time
}

// Tree is SML_Tree: one node of the device's hierarchical parameter
// configuration, used by GetProcParameterResponse and
// SetProcParameterRequest.
type Tree struct {
	ParameterName  []byte
	ParameterValue *ProcParameterValue
	Children       []Tree
}

// GetProcParameterRequest is SML_GetProcParameter_Req.
type GetProcParameterRequest struct {
	ServerID          []byte
	Username          []byte
	Password          []byte
	ParameterTreePath [][]byte
	Attribute         *Value
}

func (*GetProcParameterRequest) Type() MessageBodyType { return MessageTypeGetProcParameterRequest }

// GetProcParameterResponse is SML_GetProcParameter_Res.
type GetProcParameterResponse struct {
	ServerID          []byte
	ParameterTreePath [][]byte
	ParameterTree     Tree
}

func (*GetProcParameterResponse) Type() MessageBodyType {
	return MessageTypeGetProcParameterResponse
}

// SetProcParameterRequest is SML_SetProcParameter_Req.
type SetProcParameterRequest struct {
	ServerID          []byte
	Username          []byte
	Password          []byte
	ParameterTreePath [][]byte
	ParameterTree     Tree
}

func (*SetProcParameterRequest) Type() MessageBodyType { return MessageTypeSetProcParameterRequest }
