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

	"golang.org/x/text/unicode/norm"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// invisibleChars matches zero-width and invisible unicode marks.
var invisibleChars = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}]`)

// normalizeOp produces clean, consistent text: NFKC compatibility
// normalization, zero-width character removal, whitespace collapsing, and
// trimming. The operation is idempotent.
type normalizeOp struct{}

// Name implements Operation.
func (normalizeOp) Name() string { return OpNormalizeText }

// ParamNames implements Operation.
func (normalizeOp) ParamNames() []string { return nil }

// Apply implements Operation.
func (normalizeOp) Apply(input rule.Value, _ Params) (rule.Value, error) {
	text, err := textInput(OpNormalizeText, input)
	if err != nil {
		return rule.Value{}, err
	}
	text = norm.NFKC.String(text)
	text = invisibleChars.ReplaceAllLiteralString(text, "")
	return rule.Text(collapseWhitespace(text)), nil
}
