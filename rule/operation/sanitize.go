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
	"sync"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// censorMask replaces each recognized profane token, regardless of its
// length.
const censorMask = "****"

// defaultCensorWords is the built-in profanity list. It can be replaced
// per rule or per call via the "censor_words" parameter.
var defaultCensorWords = []string{
	"arse", "arsehole", "ass", "asshole", "bastard", "bitch", "bollocks",
	"bullshit", "cock", "crap", "cunt", "damn", "dick", "dickhead",
	"douche", "fuck", "fucker", "fucking", "jackass", "motherfucker",
	"nigger", "piss", "prick", "pussy", "shit", "shitty", "slut", "twat",
	"wanker", "whore",
}

var (
	defaultCensorOnce sync.Once
	defaultCensorRE   *regexp.Regexp
)

// censorPattern compiles a case-insensitive whole-word pattern for the
// given word list.
func censorPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// sanitizeOp masks profane tokens with a fixed-length mask marker.
// Matching is case-insensitive; non-matching text is left unchanged.
type sanitizeOp struct{}

// Name implements Operation.
func (sanitizeOp) Name() string { return OpSanitizeOffensiveLanguage }

// ParamNames implements Operation.
func (sanitizeOp) ParamNames() []string { return []string{"censor_words"} }

// Apply implements Operation.
func (sanitizeOp) Apply(input rule.Value, params Params) (rule.Value, error) {
	text, err := textInput(OpSanitizeOffensiveLanguage, input)
	if err != nil {
		return rule.Value{}, err
	}
	pattern := defaultCensor()
	if words, ok := params.StringSlice("censor_words"); ok && len(words) > 0 {
		pattern = censorPattern(words)
	}
	return rule.Text(pattern.ReplaceAllLiteralString(text, censorMask)), nil
}

// defaultCensor lazily compiles the default word list pattern once.
func defaultCensor() *regexp.Regexp {
	defaultCensorOnce.Do(func() {
		defaultCensorRE = censorPattern(defaultCensorWords)
	})
	return defaultCensorRE
}
