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

	"trpc.group/trpc-go/trpc-textprep-go/rule/operation"
)

func TestSplitIntoSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "three sentences",
			input: "Hello world. How are you? I am fine!",
			want:  []string{"Hello world.", "How are you?", "I am fine!"},
		},
		{
			name:  "irregular spacing",
			input: "Hello.    World.",
			want:  []string{"Hello.", "World."},
		},
		{
			name:  "newlines between sentences",
			input: "First one.\nSecond one.",
			want:  []string{"First one.", "Second one."},
		},
		{
			// No abbreviation awareness: a period after an
			// abbreviation still ends a fragment.
			name:  "abbreviation splits",
			input: "Mr. Smith is here.",
			want:  []string{"Mr.", "Smith is here."},
		},
		{
			name:  "no terminal punctuation",
			input: "just a fragment",
			want:  []string{"just a fragment"},
		},
		{
			name:  "repeated punctuation",
			input: "Really?! Yes. ",
			want:  []string{"Really?!", "Yes."},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "  \n\t ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := applyText(t, operation.OpSplitIntoSentences, tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mustTextList(t, out))
		})
	}
}
