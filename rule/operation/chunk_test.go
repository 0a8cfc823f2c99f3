//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package operation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-textprep-go/rule/operation"
)

// wordTokenizer is a test tokenizer: each whitespace-separated word is
// one token.
type wordTokenizer struct {
	words []string
}

func (w *wordTokenizer) Encode(text string) ([]uint, error) {
	fields := strings.Fields(text)
	ids := make([]uint, len(fields))
	for i, field := range fields {
		w.words = append(w.words, field)
		ids[i] = uint(len(w.words) - 1)
	}
	return ids, nil
}

func (w *wordTokenizer) Decode(ids []uint) (string, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = w.words[id]
	}
	return strings.Join(parts, " "), nil
}

// failingTokenizer always fails to encode.
type failingTokenizer struct{}

func (failingTokenizer) Encode(string) ([]uint, error) {
	return nil, errors.New("encoder unavailable")
}

func (failingTokenizer) Decode([]uint) (string, error) {
	return "", errors.New("decoder unavailable")
}

func chunkParams(tok any, maxTokens, overlap int) operation.Params {
	return operation.Params{
		"tokenizer":      tok,
		"max_tokens":     maxTokens,
		"overlap_tokens": overlap,
	}
}

func TestChunkTextWithTokenizer(t *testing.T) {
	out, err := applyText(t, operation.OpChunkTextWithTokenizer,
		"word1 word2 word3 word4 word5 word6", chunkParams(&wordTokenizer{}, 4, 2))
	require.NoError(t, err)

	// Windows [0,4), [2,6), [4,6).
	chunks := mustTextList(t, out)
	require.Len(t, chunks, 3)
	assert.Equal(t, "word1 word2 word3 word4", chunks[0])
	assert.Equal(t, "word3 word4 word5 word6", chunks[1])
	assert.Equal(t, "word5 word6", chunks[2])
}

func TestChunkShorterThanWindow(t *testing.T) {
	out, err := applyText(t, operation.OpChunkTextWithTokenizer,
		"word1 word2", chunkParams(&wordTokenizer{}, 5, 2))
	require.NoError(t, err)

	chunks := mustTextList(t, out)
	require.Len(t, chunks, 1)
	assert.Equal(t, "word1 word2", chunks[0])
}

func TestChunkExactFit(t *testing.T) {
	// The window covers the whole sequence, but the overlapping restart
	// at L - overlap still produces a trailing chunk.
	out, err := applyText(t, operation.OpChunkTextWithTokenizer,
		"a b c", chunkParams(&wordTokenizer{}, 3, 1))
	require.NoError(t, err)

	chunks := mustTextList(t, out)
	require.Len(t, chunks, 2)
	assert.Equal(t, "a b c", chunks[0])
	assert.Equal(t, "c", chunks[1])
}

func TestChunkEmptyInput(t *testing.T) {
	out, err := applyText(t, operation.OpChunkTextWithTokenizer,
		"", chunkParams(&wordTokenizer{}, 4, 2))
	require.NoError(t, err)
	assert.Empty(t, mustTextList(t, out))
}

func TestChunkParameterErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  operation.Params
		wantErr string
	}{
		{
			name:    "missing tokenizer",
			params:  operation.Params{"max_tokens": 4, "overlap_tokens": 2},
			wantErr: `missing required parameter "tokenizer"`,
		},
		{
			name:    "missing max_tokens",
			params:  operation.Params{"tokenizer": &wordTokenizer{}, "overlap_tokens": 2},
			wantErr: `missing required parameter "max_tokens"`,
		},
		{
			name:    "missing overlap_tokens",
			params:  operation.Params{"tokenizer": &wordTokenizer{}, "max_tokens": 4},
			wantErr: `missing required parameter "overlap_tokens"`,
		},
		{
			name:    "non-positive max_tokens",
			params:  chunkParams(&wordTokenizer{}, 0, 0),
			wantErr: "max_tokens must be positive",
		},
		{
			name:    "overlap not below max",
			params:  chunkParams(&wordTokenizer{}, 4, 4),
			wantErr: "overlap_tokens must be in [0, max_tokens)",
		},
		{
			name:    "negative overlap",
			params:  chunkParams(&wordTokenizer{}, 4, -1),
			wantErr: "overlap_tokens must be in [0, max_tokens)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := applyText(t, operation.OpChunkTextWithTokenizer, "a b c", tt.params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChunkTokenizerFailurePropagates(t *testing.T) {
	_, err := applyText(t, operation.OpChunkTextWithTokenizer,
		"a b c", chunkParams(failingTokenizer{}, 4, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder unavailable")
}
