// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// getListResponsePayloadHex is one SML_Message carrying an
// SML_GetList_Res with five ListEntry readings, captured as the unescaped
// payload a transport frame would hand to ParseMessage.
const getListResponsePayloadHex = "76050000000162006200726500000701" +
	"7701070a01020304050172620165000030397577070100010800ff0101621e52ff65033cdf6801" +
	"77070100020800ff0101621e52ff650012d45001" +
	"77070100100700ff0101621e52ff65000008fc01" +
	"77070100240700ff0101621e52ff650000047e01" +
	"77070100380700ff0101621e52ff65000003de01" +
	"0101" +
	"6320a700"

func TestParseMessageGetListResponse(t *testing.T) {
	payload := mustHex(t, getListResponsePayloadHex)
	msg, err := ParseMessage(payload, true)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if !bytes.Equal(msg.TransactionID, []byte{0, 0, 0, 1}) {
		t.Fatalf("TransactionID = %x, want 00000001", msg.TransactionID)
	}
	if msg.GroupNo != 0 || msg.AbortOnError != 0 {
		t.Fatalf("GroupNo=%d AbortOnError=%d, want 0,0", msg.GroupNo, msg.AbortOnError)
	}
	if msg.CRC16 != 0x20A7 {
		t.Fatalf("CRC16 = %#04x, want 0x20a7", msg.CRC16)
	}
	body, ok := msg.Body.(*GetListResponse)
	if !ok {
		t.Fatalf("Body type = %T, want *GetListResponse", msg.Body)
	}
	if body.ClientID != nil {
		t.Fatalf("ClientID = %x, want absent", body.ClientID)
	}
	if !bytes.Equal(body.ServerID, []byte{0x0a, 0x01, 0x02, 0x03, 0x04, 0x05}) {
		t.Fatalf("ServerID = %x, want 0a0102030405", body.ServerID)
	}
	if body.ActSensorTime == nil || body.ActSensorTime.Kind != TimeSecIndex || body.ActSensorTime.SecIndex != 12345 {
		t.Fatalf("ActSensorTime = %+v, want SecIndex(12345)", body.ActSensorTime)
	}
	if len(body.ValList) != 5 {
		t.Fatalf("len(ValList) = %d, want 5", len(body.ValList))
	}
	wantVals := []uint64{54321000, 1234000, 2300, 1150, 990}
	wantObis := [][]byte{
		{0x01, 0x00, 0x01, 0x08, 0x00, 0xff},
		{0x01, 0x00, 0x02, 0x08, 0x00, 0xff},
		{0x01, 0x00, 0x10, 0x07, 0x00, 0xff},
		{0x01, 0x00, 0x24, 0x07, 0x00, 0xff},
		{0x01, 0x00, 0x38, 0x07, 0x00, 0xff},
	}
	for i, e := range body.ValList {
		if !bytes.Equal(e.ObjName, wantObis[i]) {
			t.Fatalf("entry %d ObjName = %x, want %x", i, e.ObjName, wantObis[i])
		}
		if e.Value.Kind != ValueUint || e.Value.Uint != wantVals[i] {
			t.Fatalf("entry %d Value = %+v, want uint %d", i, e.Value, wantVals[i])
		}
		if e.Unit == nil || *e.Unit != 30 {
			t.Fatalf("entry %d Unit = %v, want 30", i, e.Unit)
		}
		if e.Scaler == nil || *e.Scaler != -1 {
			t.Fatalf("entry %d Scaler = %v, want -1", i, e.Scaler)
		}
		if e.Status != nil {
			t.Fatalf("entry %d Status = %v, want absent", i, e.Status)
		}
	}
	if body.ListSignature != nil || body.ActGatewayTime != nil {
		t.Fatalf("ListSignature/ActGatewayTime should be absent, got %v / %v", body.ListSignature, body.ActGatewayTime)
	}
}

func TestParseMessageOwnedVsBorrowed(t *testing.T) {
	payload := mustHex(t, getListResponsePayloadHex)
	owned, err := ParseMessage(payload, true)
	if err != nil {
		t.Fatalf("ParseMessage(owned): %v", err)
	}
	body := owned.Body.(*GetListResponse)
	serverIDCopy := append([]byte(nil), body.ServerID...)
	payload[19] = 0xFF // mutate the source buffer's serverId bytes in place
	if !bytes.Equal(body.ServerID, serverIDCopy) {
		t.Fatal("owned mode's ServerID view changed when the source buffer was mutated")
	}

	payload2 := mustHex(t, getListResponsePayloadHex)
	borrowed, err := ParseMessage(payload2, false)
	if err != nil {
		t.Fatalf("ParseMessage(borrowed): %v", err)
	}
	body2 := borrowed.Body.(*GetListResponse)
	before := append([]byte(nil), body2.ServerID...)
	payload2[19] = 0xFF
	if bytes.Equal(body2.ServerID, before) {
		t.Fatal("borrowed mode's ServerID should alias the source buffer")
	}
}

func TestParseFileMultipleMessages(t *testing.T) {
	one := mustHex(t, getListResponsePayloadHex)
	buf := append(append([]byte(nil), one...), one...)
	f, err := ParseFile(buf, true)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(f.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(f.Messages))
	}
	for i, msg := range f.Messages {
		if _, ok := msg.Body.(*GetListResponse); !ok {
			t.Fatalf("message %d body type = %T, want *GetListResponse", i, msg.Body)
		}
	}
}

func TestParseMessageTruncatedPayload(t *testing.T) {
	full := mustHex(t, getListResponsePayloadHex)
	if _, err := ParseMessage(full[:len(full)-3], true); err == nil {
		t.Fatal("expected an error decoding a truncated message")
	}
}

// TestParseGetProfileRequestsAbsentTimes covers getProfilePackRequest and
// getProfileListRequest's SML_Time fields: BeginTime/EndTime are OPTIONAL
// on the wire, so when both are encoded absent (0x01) the decoded request
// must carry nil pointers, not a non-nil *Time pointing at a zero-value
// (and structurally invalid) Time.
func TestParseGetProfileRequestsAbsentTimes(t *testing.T) {
	// list(9): serverId, username, password, withRawData, beginTime,
	// endTime, parameterTreePath, objectList, dasDetails, all absent.
	buf := "79" + strings.Repeat("01", 9)

	t.Run("GetProfilePackRequest", func(t *testing.T) {
		p := newParser(mustHex(t, buf), true)
		body, err := p.getProfilePackRequest()
		if err != nil {
			t.Fatalf("getProfilePackRequest: %v", err)
		}
		req, ok := body.(*GetProfilePackRequest)
		if !ok {
			t.Fatalf("body type = %T, want *GetProfilePackRequest", body)
		}
		if req.BeginTime != nil || req.EndTime != nil {
			t.Fatalf("BeginTime=%v EndTime=%v, want nil,nil for wire-absent times", req.BeginTime, req.EndTime)
		}
	})

	t.Run("GetProfileListRequest", func(t *testing.T) {
		p := newParser(mustHex(t, buf), true)
		body, err := p.getProfileListRequest()
		if err != nil {
			t.Fatalf("getProfileListRequest: %v", err)
		}
		req, ok := body.(*GetProfileListRequest)
		if !ok {
			t.Fatalf("body type = %T, want *GetProfileListRequest", body)
		}
		if req.BeginTime != nil || req.EndTime != nil {
			t.Fatalf("BeginTime=%v EndTime=%v, want nil,nil for wire-absent times", req.BeginTime, req.EndTime)
		}
	})
}

func TestParseMessageListLengthMismatch(t *testing.T) {
	// Outer TL byte 0x76 declares 6 elements; corrupt it to declare 5.
	full := mustHex(t, getListResponsePayloadHex)
	full[0] = 0x75
	_, err := ParseMessage(full, true)
	var lle *ListLengthMismatchError
	if !errors.As(err, &lle) {
		t.Fatalf("got err %v (%T), want *ListLengthMismatchError", err, err)
	}
}
