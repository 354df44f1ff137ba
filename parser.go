// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// parser drives a single recursive-descent traversal over one frame's
// unescaped payload. copyLeaf is the "leaf producer" from spec §9 Design
// Notes: a function value, not an interface, so the same traversal code
// serves both borrowed (zero-copy, views into buf) and owned (heap-copied)
// output without branching at every call site.
type parser struct {
	buf      []byte
	pos      int
	copyLeaf func([]byte) []byte
}

func newParser(buf []byte, owned bool) *parser {
	copyLeaf := func(b []byte) []byte { return b }
	if owned {
		copyLeaf = func(b []byte) []byte {
			if len(b) == 0 {
				return nil
			}
			out := make([]byte, len(b))
			copy(out, b)
			return out
		}
	}
	return &parser{buf: buf, copyLeaf: copyLeaf}
}

// ParseMessage decodes exactly one SML_Message from buf. owned selects
// whether octet-string leaves are heap copies (true) or zero-copy views
// into buf (false, valid only as long as buf itself is).
func ParseMessage(buf []byte, owned bool) (*Message, error) {
	p := newParser(buf, owned)
	return p.message()
}

// ParseFile decodes every SML_Message packed consecutively into buf
// (spec §3's File concept: a transport frame commonly carries several
// messages back to back).
func ParseFile(buf []byte, owned bool) (*File, error) {
	p := newParser(buf, owned)
	var f File
	for p.pos < len(p.buf) {
		msg, err := p.message()
		if err != nil {
			return &f, err
		}
		f.Messages = append(f.Messages, *msg)
	}
	return &f, nil
}

func (p *parser) tl() (tlHeader, error) {
	h, err := decodeTL(p.buf, p.pos)
	if err != nil {
		return tlHeader{}, err
	}
	p.pos += h.tlLen
	return h, nil
}

// peekAbsent reports whether the next TL byte is the optional-absent
// sentinel (0x01), without consuming it.
func (p *parser) peekAbsent() (bool, error) {
	if p.pos >= len(p.buf) {
		return false, ErrUnexpectedEOF
	}
	return p.buf[p.pos] == 0x01, nil
}

// expectList reads a list header, returning its declared element count.
// The second return is true when the list itself was encoded absent.
func (p *parser) expectList() (int, bool, error) {
	h, err := p.tl()
	if err != nil {
		return 0, false, err
	}
	if h.kind == tlOptionalAbsent {
		return 0, true, nil
	}
	if h.kind != tlValue || h.typ != TypeList {
		return 0, false, &UnexpectedTypeError{Expected: byte(TypeList), Actual: byte(h.typ)}
	}
	return h.length, false, nil
}

// endMarker reads the reserved 0x00 end-of-list/end-of-message byte.
func (p *parser) endMarker() error {
	h, err := p.tl()
	if err != nil {
		return err
	}
	if h.kind != tlEndOfList {
		return &UnexpectedTypeError{Expected: 0x00, Actual: byte(h.typ)}
	}
	return nil
}

func (p *parser) scalarData(h tlHeader) ([]byte, error) {
	dataLen := h.length - h.tlLen
	if dataLen < 0 || p.pos+dataLen > len(p.buf) {
		return nil, ErrUnexpectedEOF
	}
	data := p.buf[p.pos : p.pos+dataLen]
	p.pos += dataLen
	return data, nil
}

func (p *parser) octetString() ([]byte, bool, error) {
	h, err := p.tl()
	if err != nil {
		return nil, false, err
	}
	if h.kind == tlOptionalAbsent {
		return nil, true, nil
	}
	if h.kind != tlValue || h.typ != TypeOctetString {
		return nil, false, &UnexpectedTypeError{Expected: byte(TypeOctetString), Actual: byte(h.typ)}
	}
	data, err := p.scalarData(h)
	if err != nil {
		return nil, false, err
	}
	return p.copyLeaf(data), false, nil
}

func (p *parser) boolean() (bool, bool, error) {
	h, err := p.tl()
	if err != nil {
		return false, false, err
	}
	if h.kind == tlOptionalAbsent {
		return false, true, nil
	}
	if h.kind != tlValue || h.typ != TypeBoolean {
		return false, false, &UnexpectedTypeError{Expected: byte(TypeBoolean), Actual: byte(h.typ)}
	}
	data, err := p.scalarData(h)
	if err != nil {
		return false, false, err
	}
	if len(data) != 1 {
		return false, false, &UnexpectedTypeError{Expected: byte(TypeBoolean), Actual: byte(h.typ)}
	}
	return data[0] != 0, false, nil
}

func (p *parser) uint() (uint64, bool, error) {
	h, err := p.tl()
	if err != nil {
		return 0, false, err
	}
	if h.kind == tlOptionalAbsent {
		return 0, true, nil
	}
	if h.kind != tlValue || h.typ != TypeUint {
		return 0, false, &UnexpectedTypeError{Expected: byte(TypeUint), Actual: byte(h.typ)}
	}
	data, err := p.scalarData(h)
	if err != nil {
		return 0, false, err
	}
	v, err := decodeUint(data)
	return v, false, err
}

func (p *parser) int_() (int64, bool, error) {
	h, err := p.tl()
	if err != nil {
		return 0, false, err
	}
	if h.kind == tlOptionalAbsent {
		return 0, true, nil
	}
	if h.kind != tlValue || h.typ != TypeInt {
		return 0, false, &UnexpectedTypeError{Expected: byte(TypeInt), Actual: byte(h.typ)}
	}
	data, err := p.scalarData(h)
	if err != nil {
		return 0, false, err
	}
	v, err := decodeInt(data)
	return v, false, err
}

// value decodes a generic SML_Value: whichever scalar or list shape is
// actually on the wire at this position.
func (p *parser) value() (Value, bool, error) {
	h, err := p.tl()
	if err != nil {
		return Value{}, false, err
	}
	if h.kind == tlOptionalAbsent {
		return Value{}, true, nil
	}
	switch h.typ {
	case TypeOctetString:
		data, err := p.scalarData(h)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Kind: ValueOctetString, Octets: p.copyLeaf(data)}, false, nil
	case TypeBoolean:
		data, err := p.scalarData(h)
		if err != nil {
			return Value{}, false, err
		}
		if len(data) != 1 {
			return Value{}, false, &UnexpectedTypeError{Expected: byte(TypeBoolean), Actual: byte(h.typ)}
		}
		return Value{Kind: ValueBool, Bool: data[0] != 0}, false, nil
	case TypeInt:
		data, err := p.scalarData(h)
		if err != nil {
			return Value{}, false, err
		}
		v, err := decodeInt(data)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Kind: ValueInt, Int: v}, false, nil
	case TypeUint:
		data, err := p.scalarData(h)
		if err != nil {
			return Value{}, false, err
		}
		v, err := decodeUint(data)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Kind: ValueUint, Uint: v}, false, nil
	case TypeList:
		items := make([]Value, 0, h.length)
		for i := 0; i < h.length; i++ {
			v, absent, err := p.value()
			if err != nil {
				return Value{}, false, err
			}
			if absent {
				v = Value{}
			}
			items = append(items, v)
		}
		return Value{Kind: ValueList, List: items}, false, nil
	default:
		return Value{}, false, &UnexpectedTypeError{Actual: byte(h.typ)}
	}
}

// octetStringList decodes an SML_TreePath-shaped SEQUENCE OF OCTET
// STRING, used for parameterTreePath and object_list fields.
func (p *parser) octetStringList() ([][]byte, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent {
		return nil, nil
	}
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		s, sAbsent, err := p.octetString()
		if err != nil {
			return nil, err
		}
		if sAbsent {
			out = append(out, nil)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// time decodes an SML_Time choice.
func (p *parser) time() (Time, bool, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return Time{}, false, err
	}
	if absent {
		return Time{}, true, nil
	}
	if n != 2 {
		return Time{}, false, &ListLengthMismatchError{Expected: 2, Actual: n}
	}
	tag, _, err := p.uint()
	if err != nil {
		return Time{}, false, err
	}
	switch TimeKind(tag) {
	case TimeSecIndex:
		v, _, err := p.uint()
		if err != nil {
			return Time{}, false, err
		}
		return Time{Kind: TimeSecIndex, SecIndex: uint32(v)}, false, nil
	case TimeTimestamp:
		v, _, err := p.uint()
		if err != nil {
			return Time{}, false, err
		}
		return Time{Kind: TimeTimestamp, Timestamp: uint32(v)}, false, nil
	case TimeLocal:
		nn, absent2, err := p.expectList()
		if err != nil {
			return Time{}, false, err
		}
		if absent2 || nn != 3 {
			return Time{}, false, &ListLengthMismatchError{Expected: 3, Actual: nn}
		}
		ts, _, err := p.uint()
		if err != nil {
			return Time{}, false, err
		}
		loff, _, err := p.int_()
		if err != nil {
			return Time{}, false, err
		}
		soff, _, err := p.int_()
		if err != nil {
			return Time{}, false, err
		}
		return Time{
			Kind:                    TimeLocal,
			Timestamp:               uint32(ts),
			LocalOffsetMinutes:      int16(loff),
			SeasonTimeOffsetMinutes: int16(soff),
		}, false, nil
	default:
		return Time{}, false, &UnexpectedTypeError{Actual: byte(tag)}
	}
}

func (p *parser) periodEntry() (PeriodEntry, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return PeriodEntry{}, err
	}
	if absent || n != 5 {
		return PeriodEntry{}, &ListLengthMismatchError{Expected: 5, Actual: n}
	}
	objName, objAbsent, err := p.octetString()
	if err != nil {
		return PeriodEntry{}, err
	}
	if objAbsent {
		return PeriodEntry{}, &MissingRequiredFieldError{Name: "objName"}
	}
	unit, _, err := p.uint()
	if err != nil {
		return PeriodEntry{}, err
	}
	scaler, _, err := p.int_()
	if err != nil {
		return PeriodEntry{}, err
	}
	val, valAbsent, err := p.value()
	if err != nil {
		return PeriodEntry{}, err
	}
	if valAbsent {
		return PeriodEntry{}, &MissingRequiredFieldError{Name: "value"}
	}
	sig, _, err := p.octetString()
	if err != nil {
		return PeriodEntry{}, err
	}
	return PeriodEntry{
		ObjName: objName, Unit: uint8(unit), Scaler: int8(scaler),
		Value: val, ValueSignature: sig,
	}, nil
}

func (p *parser) profilePeriodList() (ProfilePeriodList, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return ProfilePeriodList{}, err
	}
	if absent || n != 3 {
		return ProfilePeriodList{}, &ListLengthMismatchError{Expected: 3, Actual: n}
	}
	actTime, _, err := p.time()
	if err != nil {
		return ProfilePeriodList{}, err
	}
	regPeriod, _, err := p.uint()
	if err != nil {
		return ProfilePeriodList{}, err
	}
	count, absent2, err := p.expectList()
	if err != nil {
		return ProfilePeriodList{}, err
	}
	var entries []PeriodEntry
	if !absent2 {
		entries = make([]PeriodEntry, 0, count)
		for i := 0; i < count; i++ {
			e, err := p.periodEntry()
			if err != nil {
				return ProfilePeriodList{}, err
			}
			entries = append(entries, e)
		}
	}
	return ProfilePeriodList{ActTimeOrPeriod: actTime, RegPeriod: uint32(regPeriod), Periods: entries}, nil
}

func (p *parser) listEntry() (ListEntry, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return ListEntry{}, err
	}
	if absent || n != 7 {
		return ListEntry{}, &ListLengthMismatchError{Expected: 7, Actual: n}
	}
	objName, objAbsent, err := p.octetString()
	if err != nil {
		return ListEntry{}, err
	}
	if objAbsent {
		return ListEntry{}, &MissingRequiredFieldError{Name: "objName"}
	}
	statusVal, stAbsent, err := p.uint()
	if err != nil {
		return ListEntry{}, err
	}
	var status *uint64
	if !stAbsent {
		status = &statusVal
	}
	valTime, vtAbsent, err := p.time()
	if err != nil {
		return ListEntry{}, err
	}
	var vt *Time
	if !vtAbsent {
		vt = &valTime
	}
	unitVal, unitAbsent, err := p.uint()
	if err != nil {
		return ListEntry{}, err
	}
	var unit *uint8
	if !unitAbsent {
		u := uint8(unitVal)
		unit = &u
	}
	scalerVal, scAbsent, err := p.int_()
	if err != nil {
		return ListEntry{}, err
	}
	var scaler *int8
	if !scAbsent {
		s := int8(scalerVal)
		scaler = &s
	}
	val, valAbsent, err := p.value()
	if err != nil {
		return ListEntry{}, err
	}
	if valAbsent {
		return ListEntry{}, &MissingRequiredFieldError{Name: "value"}
	}
	sig, _, err := p.octetString()
	if err != nil {
		return ListEntry{}, err
	}
	return ListEntry{
		ObjName: objName, Status: status, ValTime: vt, Unit: unit, Scaler: scaler,
		Value: val, ValueSignature: sig,
	}, nil
}

func (p *parser) tree() (Tree, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return Tree{}, err
	}
	if absent || n != 3 {
		return Tree{}, &ListLengthMismatchError{Expected: 3, Actual: n}
	}
	name, nameAbsent, err := p.octetString()
	if err != nil {
		return Tree{}, err
	}
	if nameAbsent {
		return Tree{}, &MissingRequiredFieldError{Name: "parameterName"}
	}
	pv, pvAbsent, err := p.procParamValue()
	if err != nil {
		return Tree{}, err
	}
	var pvPtr *ProcParameterValue
	if !pvAbsent {
		pvPtr = &pv
	}
	count, childAbsent, err := p.expectList()
	if err != nil {
		return Tree{}, err
	}
	var children []Tree
	if !childAbsent {
		children = make([]Tree, 0, count)
		for i := 0; i < count; i++ {
			c, err := p.tree()
			if err != nil {
				return Tree{}, err
			}
			children = append(children, c)
		}
	}
	return Tree{ParameterName: name, ParameterValue: pvPtr, Children: children}, nil
}

func (p *parser) procParamValue() (ProcParameterValue, bool, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return ProcParameterValue{}, false, err
	}
	if absent {
		return ProcParameterValue{}, true, nil
	}
	if n != 2 {
		return ProcParameterValue{}, false, &ListLengthMismatchError{Expected: 2, Actual: n}
	}
	tag, _, err := p.uint()
	if err != nil {
		return ProcParameterValue{}, false, err
	}
	switch tag {
	case 1:
		v, _, err := p.value()
		if err != nil {
			return ProcParameterValue{}, false, err
		}
		return ProcParameterValue{Kind: ProcParamValueScalar, Value: &v}, false, nil
	case 2:
		count, plAbsent, err := p.expectList()
		if err != nil {
			return ProcParameterValue{}, false, err
		}
		var entries []PeriodEntry
		if !plAbsent {
			entries = make([]PeriodEntry, 0, count)
			for i := 0; i < count; i++ {
				e, err := p.periodEntry()
				if err != nil {
					return ProcParameterValue{}, false, err
				}
				entries = append(entries, e)
			}
		}
		return ProcParameterValue{Kind: ProcParamValuePeriodList, PeriodList: entries}, false, nil
	case 4:
		t, _, err := p.time()
		if err != nil {
			return ProcParameterValue{}, false, err
		}
		return ProcParameterValue{Kind: ProcParamValueTime, Time: &t}, false, nil
	default:
		// Reserved/tupleEntry cases are surfaced as a generic value rather
		// than rejected outright, so unfamiliar vendor extensions don't
		// abort the whole tree.
		v, _, err := p.value()
		if err != nil {
			return ProcParameterValue{}, false, err
		}
		return ProcParameterValue{Kind: ProcParamValueScalar, Value: &v}, false, nil
	}
}

func (p *parser) message() (*Message, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 6 {
		return nil, &ListLengthMismatchError{Expected: 6, Actual: n}
	}
	txID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	groupNo, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	abort, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	body, err := p.messageBody()
	if err != nil {
		return nil, err
	}
	crcRaw, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	if err := p.endMarker(); err != nil {
		return nil, err
	}
	return &Message{
		TransactionID: txID,
		GroupNo:       uint8(groupNo),
		AbortOnError:  uint8(abort),
		Body:          body,
		CRC16:         uint16(crcRaw),
	}, nil
}

func (p *parser) messageBody() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 2 {
		return nil, &ListLengthMismatchError{Expected: 2, Actual: n}
	}
	tagRaw, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	tag := MessageBodyType(tagRaw)
	switch tag {
	case MessageTypeOpenRequest:
		return p.openRequest()
	case MessageTypeOpenResponse:
		return p.openResponse()
	case MessageTypeCloseRequest:
		return p.closeRequest()
	case MessageTypeCloseResponse:
		return p.closeResponse()
	case MessageTypeGetProfilePackRequest:
		return p.getProfilePackRequest()
	case MessageTypeGetProfilePackResponse:
		return p.getProfilePackResponse()
	case MessageTypeGetProfileListRequest:
		return p.getProfileListRequest()
	case MessageTypeGetProfileListResponse:
		return p.getProfileListResponse()
	case MessageTypeGetProcParameterRequest:
		return p.getProcParameterRequest()
	case MessageTypeGetProcParameterResponse:
		return p.getProcParameterResponse()
	case MessageTypeSetProcParameterRequest:
		return p.setProcParameterRequest()
	case MessageTypeGetListRequest:
		return p.getListRequest()
	case MessageTypeGetListResponse:
		return p.getListResponse()
	case MessageTypeAttentionResponse:
		return p.attentionResponse()
	default:
		if _, _, err := p.value(); err != nil {
			return nil, err
		}
		return nil, &UnknownMessageTypeError{ID: uint32(tag)}
	}
}

func (p *parser) openRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 7 {
		return nil, &ListLengthMismatchError{Expected: 7, Actual: n}
	}
	codepage, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	clientID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	reqFileID, reqAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if reqAbsent {
		return nil, &MissingRequiredFieldError{Name: "reqFileId"}
	}
	serverID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	username, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	password, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	verVal, verAbsent, err := p.uint()
	if err != nil {
		return nil, err
	}
	var ver *uint8
	if !verAbsent {
		v := uint8(verVal)
		ver = &v
	}
	return &OpenRequest{
		Codepage: codepage, ClientID: clientID, ReqFileID: reqFileID,
		ServerID: serverID, Username: username, Password: password, SMLVersion: ver,
	}, nil
}

func (p *parser) openResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 6 {
		return nil, &ListLengthMismatchError{Expected: 6, Actual: n}
	}
	codepage, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	clientID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	reqFileID, reqAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if reqAbsent {
		return nil, &MissingRequiredFieldError{Name: "reqFileId"}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	refTime, refAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var rt *Time
	if !refAbsent {
		rt = &refTime
	}
	verVal, verAbsent, err := p.uint()
	if err != nil {
		return nil, err
	}
	var ver *uint8
	if !verAbsent {
		v := uint8(verVal)
		ver = &v
	}
	return &OpenResponse{
		Codepage: codepage, ClientID: clientID, ReqFileID: reqFileID,
		ServerID: serverID, RefTime: rt, SMLVersion: ver,
	}, nil
}

func (p *parser) closeRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 1 {
		return nil, &ListLengthMismatchError{Expected: 1, Actual: n}
	}
	sig, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	return &CloseRequest{GlobalSignature: sig}, nil
}

func (p *parser) closeResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 1 {
		return nil, &ListLengthMismatchError{Expected: 1, Actual: n}
	}
	sig, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	return &CloseResponse{GlobalSignature: sig}, nil
}

func (p *parser) getProfilePackRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 9 {
		return nil, &ListLengthMismatchError{Expected: 9, Actual: n}
	}
	serverID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	username, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	password, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	rawVal, rawAbsent, err := p.boolean()
	if err != nil {
		return nil, err
	}
	beginTime, beginAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var bt *Time
	if !beginAbsent {
		bt = &beginTime
	}
	endTime, endAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var et *Time
	if !endAbsent {
		et = &endTime
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	objList, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	das, dasAbsent, err := p.value()
	if err != nil {
		return nil, err
	}
	var dasPtr *Value
	if !dasAbsent {
		dasPtr = &das
	}
	return &GetProfilePackRequest{
		ServerID: serverID, Username: username, Password: password,
		WithRawData: !rawAbsent && rawVal, BeginTime: bt, EndTime: et,
		ParameterTreePath: treePath, ObjectList: objList, DasDetails: dasPtr,
	}, nil
}

func (p *parser) getProfilePackResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 8 {
		return nil, &ListLengthMismatchError{Expected: 8, Actual: n}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	actTime, _, err := p.time()
	if err != nil {
		return nil, err
	}
	regPeriod, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	headerList, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	count, plAbsent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	var periods []ProfilePeriodList
	if !plAbsent {
		periods = make([]ProfilePeriodList, 0, count)
		for i := 0; i < count; i++ {
			pl, err := p.profilePeriodList()
			if err != nil {
				return nil, err
			}
			periods = append(periods, pl)
		}
	}
	rawData, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	sig, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	return &GetProfilePackResponse{
		ServerID: serverID, ActTime: actTime, RegPeriod: uint32(regPeriod),
		ParameterTreePath: treePath, HeaderList: headerList, PeriodLists: periods,
		RawData: rawData, ProfileSignature: sig,
	}, nil
}

func (p *parser) getProfileListRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 9 {
		return nil, &ListLengthMismatchError{Expected: 9, Actual: n}
	}
	serverID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	username, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	password, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	rawVal, rawAbsent, err := p.boolean()
	if err != nil {
		return nil, err
	}
	beginTime, beginAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var bt *Time
	if !beginAbsent {
		bt = &beginTime
	}
	endTime, endAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var et *Time
	if !endAbsent {
		et = &endTime
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	objList, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	das, dasAbsent, err := p.value()
	if err != nil {
		return nil, err
	}
	var dasPtr *Value
	if !dasAbsent {
		dasPtr = &das
	}
	return &GetProfileListRequest{
		ServerID: serverID, Username: username, Password: password,
		WithRawData: !rawAbsent && rawVal, BeginTime: bt, EndTime: et,
		ParameterTreePath: treePath, ObjectList: objList, DasDetails: dasPtr,
	}, nil
}

func (p *parser) getProfileListResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 9 {
		return nil, &ListLengthMismatchError{Expected: 9, Actual: n}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	actTime, _, err := p.time()
	if err != nil {
		return nil, err
	}
	regPeriod, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	valTime, _, err := p.time()
	if err != nil {
		return nil, err
	}
	status, _, err := p.uint()
	if err != nil {
		return nil, err
	}
	count, plAbsent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	var entries []PeriodEntry
	if !plAbsent {
		entries = make([]PeriodEntry, 0, count)
		for i := 0; i < count; i++ {
			e, err := p.periodEntry()
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
	rawData, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	sig, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	return &GetProfileListResponse{
		ServerID: serverID, ActTime: actTime, RegPeriod: uint32(regPeriod),
		ParameterTreePath: treePath, ValTime: valTime, Status: status,
		PeriodList: entries, RawData: rawData, PeriodSignature: sig,
	}, nil
}

func (p *parser) getProcParameterRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 5 {
		return nil, &ListLengthMismatchError{Expected: 5, Actual: n}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	username, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	password, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	attr, attrAbsent, err := p.value()
	if err != nil {
		return nil, err
	}
	var attrPtr *Value
	if !attrAbsent {
		attrPtr = &attr
	}
	return &GetProcParameterRequest{
		ServerID: serverID, Username: username, Password: password,
		ParameterTreePath: treePath, Attribute: attrPtr,
	}, nil
}

func (p *parser) getProcParameterResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 3 {
		return nil, &ListLengthMismatchError{Expected: 3, Actual: n}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	tree, err := p.tree()
	if err != nil {
		return nil, err
	}
	return &GetProcParameterResponse{ServerID: serverID, ParameterTreePath: treePath, ParameterTree: tree}, nil
}

func (p *parser) setProcParameterRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 5 {
		return nil, &ListLengthMismatchError{Expected: 5, Actual: n}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	username, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	password, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	treePath, err := p.octetStringList()
	if err != nil {
		return nil, err
	}
	tree, err := p.tree()
	if err != nil {
		return nil, err
	}
	return &SetProcParameterRequest{
		ServerID: serverID, Username: username, Password: password,
		ParameterTreePath: treePath, ParameterTree: tree,
	}, nil
}

func (p *parser) getListRequest() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 5 {
		return nil, &ListLengthMismatchError{Expected: 5, Actual: n}
	}
	clientID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	username, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	password, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	listName, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	return &GetListRequest{
		ClientID: clientID, ServerID: serverID, Username: username,
		Password: password, ListName: listName,
	}, nil
}

func (p *parser) getListResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 7 {
		return nil, &ListLengthMismatchError{Expected: 7, Actual: n}
	}
	clientID, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	listName, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	actSensorTime, atAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var ast *Time
	if !atAbsent {
		ast = &actSensorTime
	}
	count, valAbsent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if valAbsent {
		return nil, &MissingRequiredFieldError{Name: "valList"}
	}
	entries := make([]ListEntry, 0, count)
	for i := 0; i < count; i++ {
		e, err := p.listEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	listSig, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	actGwTime, agAbsent, err := p.time()
	if err != nil {
		return nil, err
	}
	var agt *Time
	if !agAbsent {
		agt = &actGwTime
	}
	return &GetListResponse{
		ClientID: clientID, ServerID: serverID, ListName: listName,
		ActSensorTime: ast, ValList: entries, ListSignature: listSig, ActGatewayTime: agt,
	}, nil
}

func (p *parser) attentionResponse() (MessageBody, error) {
	n, absent, err := p.expectList()
	if err != nil {
		return nil, err
	}
	if absent || n != 4 {
		return nil, &ListLengthMismatchError{Expected: 4, Actual: n}
	}
	serverID, srvAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if srvAbsent {
		return nil, &MissingRequiredFieldError{Name: "serverId"}
	}
	num, numAbsent, err := p.octetString()
	if err != nil {
		return nil, err
	}
	if numAbsent {
		return nil, &MissingRequiredFieldError{Name: "attentionNumber"}
	}
	msg, _, err := p.octetString()
	if err != nil {
		return nil, err
	}
	detAbsent, err := p.peekAbsent()
	if err != nil {
		return nil, err
	}
	var details MessageBody
	if detAbsent {
		p.pos++
	} else {
		details, err = p.messageBody()
		if err != nil {
			return nil, err
		}
	}
	return &AttentionResponse{
		ServerID: serverID, AttentionNumber: num, AttentionMessage: msg, AttentionDetails: details,
	}, nil
}
