//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package rule

import "fmt"

// Kind discriminates the variants a Value can hold.
type Kind int

// Value kinds. Operations are polymorphic over return shape: validation
// rules produce Bool, transforms produce Text, splitters and chunkers
// produce List, and detectors produce Record.
const (
	KindText Kind = iota
	KindBool
	KindList
	KindRecord
)

// String returns the kind name for error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the tagged union flowing through a pipeline. The zero Value is
// the empty text value.
type Value struct {
	kind   Kind
	text   string
	flag   bool
	list   []Value
	record map[string]any
}

// Text wraps a string as a Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool wraps a boolean as a Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// List wraps an ordered sequence of values as a Value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Record wraps a structured result (e.g. a detection outcome) as a Value.
func Record(fields map[string]any) Value {
	return Value{kind: KindRecord, record: fields}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsList reports whether the value is list-shaped. The pipeline executor
// uses this to decide between scalar application and per-element mapping.
func (v Value) IsList() bool { return v.kind == KindList }

// AsText returns the text payload. ok is false for non-text values.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsBool returns the boolean payload. ok is false for non-bool values.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsList returns the element slice. ok is false for non-list values.
// The returned slice is shared; callers must not mutate it.
func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// AsRecord returns the record fields. ok is false for non-record values.
// The returned map is shared; callers must not mutate it.
func (v Value) AsRecord() (map[string]any, bool) {
	return v.record, v.kind == KindRecord
}

// String renders the value for logs and test failures.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("text(%q)", v.text)
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.flag)
	case KindList:
		return fmt.Sprintf("list(len=%d)", len(v.list))
	case KindRecord:
		return fmt.Sprintf("record(%v)", v.record)
	default:
		return "value(?)"
	}
}
