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
	"strings"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// sentenceBoundary matches sentence-ending punctuation followed by
// whitespace. The split happens immediately after the punctuation.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// sentenceOp splits text into sentences on punctuation boundaries. There
// is no abbreviation awareness: a period after an abbreviation still ends
// a fragment.
type sentenceOp struct{}

// Name implements Operation.
func (sentenceOp) Name() string { return OpSplitIntoSentences }

// ParamNames implements Operation.
func (sentenceOp) ParamNames() []string { return nil }

// Apply implements Operation. It collapses whitespace first, then cuts
// after each `.`, `!`, or `?` followed by whitespace, discarding empty
// fragments. The result is the ordered list of trimmed sentences.
func (sentenceOp) Apply(input rule.Value, _ Params) (rule.Value, error) {
	text, err := textInput(OpSplitIntoSentences, input)
	if err != nil {
		return rule.Value{}, err
	}
	collapsed := collapseWhitespace(text)

	var sentences []rule.Value
	last := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(collapsed, -1) {
		// loc[0] is the punctuation character; keep it with the
		// sentence and resume after the whitespace run.
		appendSentence(&sentences, collapsed[last:loc[0]+1])
		last = loc[1]
	}
	appendSentence(&sentences, collapsed[last:])
	return rule.List(sentences...), nil
}

// appendSentence appends the trimmed fragment unless it is empty.
func appendSentence(sentences *[]rule.Value, fragment string) {
	fragment = strings.TrimSpace(fragment)
	if fragment != "" {
		*sentences = append(*sentences, rule.Text(fragment))
	}
}
