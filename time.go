// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// TimeKind is the SML_Time choice tag, per BSI TR-03109-1's SML_Time
// grammar (supplemented; see SPEC_FULL.md).
type TimeKind uint8

const (
	TimeSecIndex  TimeKind = 1
	TimeTimestamp TimeKind = 2
	TimeLocal     TimeKind = 3
)

// Time is the decoded form of an SML_Time choice. Only the fields
// relevant to Kind are meaningful.
type Time struct {
	Kind TimeKind

	// SecIndex is valid when Kind == TimeSecIndex: a meter-local,
	// monotonically increasing second counter with no calendar meaning.
	SecIndex uint32

	// Timestamp is valid when Kind is TimeTimestamp or TimeLocal: Unix
	// seconds.
	Timestamp uint32

	// LocalOffsetMinutes and SeasonTimeOffsetMinutes are valid only when
	// Kind == TimeLocal.
	LocalOffsetMinutes      int16
	SeasonTimeOffsetMinutes int16
}
