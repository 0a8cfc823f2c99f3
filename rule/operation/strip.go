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

var (
	// urlPattern matches http(s) URLs and bare www-prefixed hosts.
	urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	// htmlTagPattern matches angle-bracket markup tags.
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// urlOp removes URLs and web artifacts, replacing each with the
// "replace_with" parameter (empty by default), then collapses the
// whitespace left behind.
type urlOp struct{}

// Name implements Operation.
func (urlOp) Name() string { return OpRemoveURLs }

// ParamNames implements Operation.
func (urlOp) ParamNames() []string { return []string{"replace_with"} }

// Apply implements Operation.
func (urlOp) Apply(input rule.Value, params Params) (rule.Value, error) {
	text, err := textInput(OpRemoveURLs, input)
	if err != nil {
		return rule.Value{}, err
	}
	replacement, _ := params.String("replace_with")
	text = urlPattern.ReplaceAllLiteralString(text, replacement)
	return rule.Text(collapseWhitespace(text)), nil
}

// htmlOp strips HTML and markup tags, then collapses the whitespace left
// behind.
type htmlOp struct{}

// Name implements Operation.
func (htmlOp) Name() string { return OpRemoveHTMLTags }

// ParamNames implements Operation.
func (htmlOp) ParamNames() []string { return nil }

// Apply implements Operation.
func (htmlOp) Apply(input rule.Value, _ Params) (rule.Value, error) {
	text, err := textInput(OpRemoveHTMLTags, input)
	if err != nil {
		return rule.Value{}, err
	}
	text = htmlTagPattern.ReplaceAllLiteralString(text, "")
	return rule.Text(collapseWhitespace(text)), nil
}
