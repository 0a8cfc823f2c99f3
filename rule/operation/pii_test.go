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

func TestMaskPII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "email",
			input: "Contact me at john.doe@example.com please",
			want:  "Contact me at [EMAIL] please",
		},
		{
			name:  "bare ten digit phone",
			input: "Call 9876543210 now",
			want:  "Call [PHONE] now",
		},
		{
			// The pattern anchors on \b, and '+' is not a word
			// character, so the leading '+' is left behind.
			name:  "phone with country code",
			input: "Call +91 9876543210 now",
			want:  "Call +[PHONE] now",
		},
		{
			name:  "email and phone together",
			input: "john@example.com or 9876543210",
			want:  "[EMAIL] or [PHONE]",
		},
		{
			name:  "no pii unchanged",
			input: "Nothing sensitive here.",
			want:  "Nothing sensitive here.",
		},
		{
			name:  "short digit run untouched",
			input: "Order 12345 shipped",
			want:  "Order 12345 shipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := applyText(t, operation.OpMaskPII, tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mustText(t, out))
		})
	}
}
