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

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// chunkOp splits text into overlapping chunks aligned with token
// boundaries. The tokenizer capability cannot be a static default; the
// caller injects it through the runtime context under "tokenizer".
type chunkOp struct{}

// Name implements Operation.
func (chunkOp) Name() string { return OpChunkTextWithTokenizer }

// ParamNames implements Operation.
func (chunkOp) ParamNames() []string {
	return []string{"tokenizer", "max_tokens", "overlap_tokens"}
}

// Apply implements Operation. It slices the encoded token sequence into
// consecutive windows of max_tokens, decoding each window back to text
// and advancing the window start by max_tokens - overlap_tokens until the
// whole sequence is covered.
func (chunkOp) Apply(input rule.Value, params Params) (rule.Value, error) {
	text, err := textInput(OpChunkTextWithTokenizer, input)
	if err != nil {
		return rule.Value{}, err
	}
	tok, ok := params.Tokenizer("tokenizer")
	if !ok {
		return rule.Value{}, fmt.Errorf("%s: missing required parameter %q", OpChunkTextWithTokenizer, "tokenizer")
	}
	maxTokens, ok := params.Int("max_tokens")
	if !ok {
		return rule.Value{}, fmt.Errorf("%s: missing required parameter %q", OpChunkTextWithTokenizer, "max_tokens")
	}
	overlap, ok := params.Int("overlap_tokens")
	if !ok {
		return rule.Value{}, fmt.Errorf("%s: missing required parameter %q", OpChunkTextWithTokenizer, "overlap_tokens")
	}
	if maxTokens <= 0 {
		return rule.Value{}, fmt.Errorf("%s: max_tokens must be positive, got %d", OpChunkTextWithTokenizer, maxTokens)
	}
	if overlap < 0 || overlap >= maxTokens {
		// The window must advance every iteration.
		return rule.Value{}, fmt.Errorf("%s: overlap_tokens must be in [0, max_tokens), got %d", OpChunkTextWithTokenizer, overlap)
	}

	ids, err := tok.Encode(text)
	if err != nil {
		return rule.Value{}, fmt.Errorf("%s: encode: %w", OpChunkTextWithTokenizer, err)
	}

	var chunks []rule.Value
	for start := 0; start < len(ids); start += maxTokens - overlap {
		end := start + maxTokens
		if end > len(ids) {
			end = len(ids)
		}
		piece, err := tok.Decode(ids[start:end])
		if err != nil {
			return rule.Value{}, fmt.Errorf("%s: decode: %w", OpChunkTextWithTokenizer, err)
		}
		chunks = append(chunks, rule.Text(piece))
	}
	return rule.List(chunks...), nil
}
