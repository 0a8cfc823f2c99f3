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
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// nonEmptyOp validates that the input contains at least one
// non-whitespace character.
type nonEmptyOp struct{}

// Name implements Operation.
func (nonEmptyOp) Name() string { return OpIsNonEmpty }

// ParamNames implements Operation. The check takes no parameters.
func (nonEmptyOp) ParamNames() []string { return nil }

// Apply implements Operation.
func (nonEmptyOp) Apply(input rule.Value, _ Params) (rule.Value, error) {
	text, err := textInput(OpIsNonEmpty, input)
	if err != nil {
		return rule.Value{}, err
	}
	return rule.Bool(strings.TrimSpace(text) != ""), nil
}

// minWordsOp validates that the input contains at least n
// whitespace-separated words.
type minWordsOp struct{}

// Name implements Operation.
func (minWordsOp) Name() string { return OpHasMinimumWords }

// ParamNames implements Operation.
func (minWordsOp) ParamNames() []string { return []string{"n"} }

// Apply implements Operation.
func (minWordsOp) Apply(input rule.Value, params Params) (rule.Value, error) {
	text, err := textInput(OpHasMinimumWords, input)
	if err != nil {
		return rule.Value{}, err
	}
	n, ok := params.Int("n")
	if !ok {
		return rule.Value{}, fmt.Errorf("%s: missing required parameter %q", OpHasMinimumWords, "n")
	}
	return rule.Bool(len(strings.Fields(text)) >= n), nil
}
