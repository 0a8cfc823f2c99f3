//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

// Package rule defines the data model of the text preprocessing engine:
// rule descriptors, the immutable catalogue they live in, and the Value
// variant type that flows through pipelines.
package rule

// CategoryValidation tags descriptors whose operation is a boolean check.
// The validation runner selects descriptors by this category.
const CategoryValidation = "validation"

// Descriptor binds a stable rule ID to a registered operation and its
// static default parameters. Descriptors are plain data: the engine never
// consults RuleText or Description.
type Descriptor struct {
	// ID is the unique, stable handle callers use to refer to the rule
	// (e.g. "R1"). Unique across a catalogue.
	ID string `yaml:"id"`
	// Category groups descriptors for selection (e.g. "validation").
	// It is an open tag, not an enum; new categories need no code change.
	Category string `yaml:"category"`
	// Operation names the registered operation this rule dispatches to.
	Operation string `yaml:"operation"`
	// Params holds static default parameters, fixed at catalogue
	// definition time. Runtime context values override them per call.
	Params map[string]any `yaml:"params"`
	// RuleText is the human-readable statement of the rule.
	RuleText string `yaml:"rule_text"`
	// Description documents intent for tooling and introspection.
	Description string `yaml:"description"`
}

// Domain is one entry of the ordered domain list used by question/domain
// detection. Domains are scanned in slice order and the first domain with
// any matching keyword wins, so order expresses priority.
type Domain struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
