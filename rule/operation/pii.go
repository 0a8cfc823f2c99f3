//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package operation

import (
	"regexp"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// Markers substituted for recognized PII.
const (
	emailMarker = "[EMAIL]"
	phoneMarker = "[PHONE]"
)

var (
	// emailPattern matches common email addresses.
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// phonePattern matches 10-digit phone numbers with an optional
	// leading + and 1-3 digit country code and flexible separators.
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[\s-]?)?\d{10}\b`)
)

// piiOp masks emails and phone numbers with literal markers. Both
// substitutions are regex-based, non-overlapping, leftmost-first.
type piiOp struct{}

// Name implements Operation.
func (piiOp) Name() string { return OpMaskPII }

// ParamNames implements Operation.
func (piiOp) ParamNames() []string { return nil }

// Apply implements Operation.
func (piiOp) Apply(input rule.Value, _ Params) (rule.Value, error) {
	text, err := textInput(OpMaskPII, input)
	if err != nil {
		return rule.Value{}, err
	}
	text = emailPattern.ReplaceAllLiteralString(text, emailMarker)
	text = phonePattern.ReplaceAllLiteralString(text, phoneMarker)
	return rule.Text(text), nil
}
