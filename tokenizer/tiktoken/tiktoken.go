//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

// Package tiktoken provides a tiktoken-go based tokenizer implementation
// compatible with the root tokenizer.Tokenizer interface.
package tiktoken

import (
	"fmt"

	tiktoken "github.com/tiktoken-go/tokenizer"
)

// Codec wraps a tiktoken encoding as a tokenizer.Tokenizer.
type Codec struct {
	encoding tiktoken.Codec
}

// New creates a tiktoken-based tokenizer for the given OpenAI model name
// (e.g. "gpt-4o"). If the model is not supported, it falls back to
// cl100k_base for broad compatibility.
func New(modelName string) (*Codec, error) {
	enc, err := tiktoken.ForModel(tiktoken.Model(modelName))
	if err != nil {
		enc, err = tiktoken.Get(tiktoken.Cl100kBase)
		if err != nil {
			return nil, fmt.Errorf("failed to get fallback tokenizer: %w", err)
		}
	}
	return &Codec{encoding: enc}, nil
}

// Encode converts text into tiktoken token IDs.
func (c *Codec) Encode(text string) ([]uint, error) {
	ids, _, err := c.encoding.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	return ids, nil
}

// Decode converts tiktoken token IDs back into text.
func (c *Codec) Decode(ids []uint) (string, error) {
	text, err := c.encoding.Decode(ids)
	if err != nil {
		return "", fmt.Errorf("decode failed: %w", err)
	}
	return text, nil
}
