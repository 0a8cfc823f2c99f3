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

// Record field names of the question/domain detection result.
const (
	KeyIsQuestion = "is_question"
	KeyDomain     = "domain"
)

// DomainUnknown is returned when a question matches no domain keywords.
const DomainUnknown = "unknown"

// questionLeadWords are the interrogative words that mark a question when
// the text starts with one of them followed by a space.
var questionLeadWords = []string{
	"what", "how", "why", "when", "where", "which", "can", "does", "is",
}

// questionDomainOp detects question intent and routes the question to the
// first domain whose any keyword occurs in the text. Domains are scanned
// in list order, so the order of the "domains" parameter is a priority.
type questionDomainOp struct{}

// Name implements Operation.
func (questionDomainOp) Name() string { return OpDetectQuestionAndDomain }

// ParamNames implements Operation.
func (questionDomainOp) ParamNames() []string { return []string{"domains"} }

// Apply implements Operation. The result is a record with fields
// "is_question" (bool) and "domain" (string, or nil when the text is not
// a question).
func (questionDomainOp) Apply(input rule.Value, params Params) (rule.Value, error) {
	text, err := textInput(OpDetectQuestionAndDomain, input)
	if err != nil {
		return rule.Value{}, err
	}
	domains, ok := params.Domains("domains")
	if !ok {
		return rule.Value{}, fmt.Errorf("%s: missing required parameter %q", OpDetectQuestionAndDomain, "domains")
	}

	lower := strings.ToLower(text)
	isQuestion := strings.Contains(lower, "?")
	if !isQuestion {
		for _, lead := range questionLeadWords {
			if strings.HasPrefix(lower, lead+" ") {
				isQuestion = true
				break
			}
		}
	}
	if !isQuestion {
		return rule.Record(map[string]any{
			KeyIsQuestion: false,
			KeyDomain:     nil,
		}), nil
	}

	for _, domain := range domains {
		for _, keyword := range domain.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Record(map[string]any{
					KeyIsQuestion: true,
					KeyDomain:     domain.Name,
				}), nil
			}
		}
	}
	return rule.Record(map[string]any{
		KeyIsQuestion: true,
		KeyDomain:     DomainUnknown,
	}), nil
}
