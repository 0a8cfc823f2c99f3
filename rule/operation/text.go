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
	"regexp"
	"strings"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// whitespaceRun matches runs of whitespace including tabs and newlines.
var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace collapses whitespace runs to single spaces and trims
// leading/trailing whitespace.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllLiteralString(text, " "))
}

// textInput unwraps the primary text input of an operation.
func textInput(opName string, input rule.Value) (string, error) {
	text, ok := input.AsText()
	if !ok {
		return "", fmt.Errorf("%s: text input required, got %s", opName, input.Kind())
	}
	return text, nil
}
