//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package rule

import "errors"

var (
	// ErrUnknownRule is returned when a rule ID is not in the catalogue.
	ErrUnknownRule = errors.New("rule: unknown rule id")
	// ErrDuplicateRule is returned when a catalogue definition contains
	// the same rule ID twice.
	ErrDuplicateRule = errors.New("rule: duplicate rule id")
	// ErrEmptyRuleID is returned when a catalogue definition contains a
	// descriptor without an ID.
	ErrEmptyRuleID = errors.New("rule: empty rule id")
)
