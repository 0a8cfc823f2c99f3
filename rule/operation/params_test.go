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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
	"trpc.group/trpc-go/trpc-textprep-go/rule/operation"
)

func TestParamsInt(t *testing.T) {
	params := operation.Params{
		"int":     3,
		"int64":   int64(4),
		"float64": 5.0,
		"string":  "6",
	}

	n, ok := params.Int("int")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = params.Int("int64")
	require.True(t, ok)
	assert.Equal(t, 4, n)

	n, ok = params.Int("float64")
	require.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = params.Int("string")
	assert.False(t, ok)

	_, ok = params.Int("absent")
	assert.False(t, ok)
}

func TestParamsString(t *testing.T) {
	params := operation.Params{"s": "hello", "n": 1}

	s, ok := params.String("s")
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = params.String("n")
	assert.False(t, ok)
}

func TestParamsStringSlice(t *testing.T) {
	params := operation.Params{
		"typed":   []string{"a", "b"},
		"generic": []any{"a", "b"},
		"mixed":   []any{"a", 1},
		"scalar":  "a",
	}

	words, ok := params.StringSlice("typed")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, words)

	words, ok = params.StringSlice("generic")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, words)

	_, ok = params.StringSlice("mixed")
	assert.False(t, ok)

	_, ok = params.StringSlice("scalar")
	assert.False(t, ok)
}

func TestParamsDomains(t *testing.T) {
	typed := []rule.Domain{{Name: "finance", Keywords: []string{"refund"}}}
	params := operation.Params{
		"typed": typed,
		// Shape a YAML catalogue decodes to.
		"generic": []any{
			map[string]any{"name": "finance", "keywords": []any{"refund"}},
			map[string]any{"name": "account", "keywords": []any{"login", "password"}},
		},
		"malformed": []any{map[string]any{"keywords": []any{"x"}}},
	}

	domains, ok := params.Domains("typed")
	require.True(t, ok)
	assert.Equal(t, typed, domains)

	domains, ok = params.Domains("generic")
	require.True(t, ok)
	require.Len(t, domains, 2)
	assert.Equal(t, "finance", domains[0].Name)
	assert.Equal(t, []string{"login", "password"}, domains[1].Keywords)

	_, ok = params.Domains("malformed")
	assert.False(t, ok)

	_, ok = params.Domains("absent")
	assert.False(t, ok)
}

func TestParamsTokenizer(t *testing.T) {
	params := operation.Params{"tokenizer": &wordTokenizer{}, "other": 1}

	tok, ok := params.Tokenizer("tokenizer")
	require.True(t, ok)
	assert.NotNil(t, tok)

	_, ok = params.Tokenizer("other")
	assert.False(t, ok)
}
