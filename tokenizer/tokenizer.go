//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

// Package tokenizer defines the token codec capability consumed by the
// chunking operation. The engine never constructs a tokenizer itself; the
// caller injects one through the runtime context.
package tokenizer

// Tokenizer encodes text into model token IDs and decodes token IDs back
// into text. Implementations shared across concurrent pipeline runs must
// themselves be safe for concurrent use; the engine does not serialize
// access to them.
type Tokenizer interface {
	// Encode converts text into a sequence of token IDs.
	Encode(text string) ([]uint, error)
	// Decode converts a sequence of token IDs back into text.
	Decode(ids []uint) (string, error)
}
