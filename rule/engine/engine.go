//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

// Package engine dispatches catalogued rules to registered operations and
// composes them into ordered pipelines.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-textprep-go/log"
	"trpc.group/trpc-go/trpc-textprep-go/rule"
	"trpc.group/trpc-go/trpc-textprep-go/rule/operation"
)

// Engine resolves rule IDs against a catalogue and invokes the named
// operations. It holds no mutable state across calls and may be used
// concurrently with independent inputs and runtime contexts.
type Engine struct {
	catalogue *rule.Catalogue
	registry  *operation.Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry makes the engine resolve operations against a custom
// registry instead of the global one. The registry should already contain
// the built-ins (operation.RegisterBuiltins).
func WithRegistry(r *operation.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// New creates an engine over the given catalogue. A nil catalogue means
// the default built-in catalogue.
func New(catalogue *rule.Catalogue, opts ...Option) *Engine {
	if catalogue == nil {
		catalogue = rule.DefaultCatalogue()
	}
	e := &Engine{catalogue: catalogue}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply dispatches a single rule: it looks the rule up in the catalogue,
// merges the descriptor's static parameters with the runtime context
// (runtime wins on collision), filters the merged set down to the
// parameters the operation declares, and invokes the operation on input.
//
// The merge is deliberately lenient: a merged key the operation does not
// declare is silently dropped, and a declared parameter missing from the
// merged set is not synthesized — the operation raises its own error.
// Errors from the operation propagate unchanged.
func (e *Engine) Apply(ruleID string, input rule.Value, ctx operation.Params) (rule.Value, error) {
	desc, ok := e.catalogue.Get(ruleID)
	if !ok {
		return rule.Value{}, fmt.Errorf("%w: %q", rule.ErrUnknownRule, ruleID)
	}
	op, ok := e.lookup(desc.Operation)
	if !ok {
		return rule.Value{}, fmt.Errorf("%w: rule %q references %q", operation.ErrUnknownOperation, ruleID, desc.Operation)
	}
	return op.Apply(input, mergeParams(desc.Params, ctx, op.ParamNames()))
}

// Run executes an ordered pipeline of rules over seed. The runtime
// context is shared, read-only, across every step.
//
// A current value starts as seed. When the current value is list-shaped,
// the rule is applied to every element independently, in order, and the
// results replace the elements in place; otherwise the rule is applied
// once and its result, of whatever shape, becomes the current value. A
// list-producing rule applied to an already-list-shaped value yields
// nested lists; nothing is flattened.
//
// An empty pipeline returns seed unchanged. Any step error aborts the run
// immediately; no partial result is returned.
func (e *Engine) Run(seed rule.Value, ruleIDs []string, ctx operation.Params) (rule.Value, error) {
	runID := uuid.NewString()
	current := seed
	for _, id := range ruleIDs {
		if items, ok := current.AsList(); ok {
			mapped := make([]rule.Value, len(items))
			for i, item := range items {
				out, err := e.Apply(id, item, ctx)
				if err != nil {
					return rule.Value{}, err
				}
				mapped[i] = out
			}
			current = rule.List(mapped...)
		} else {
			out, err := e.Apply(id, current, ctx)
			if err != nil {
				return rule.Value{}, err
			}
			current = out
		}
		log.Debugf("pipeline %s: rule %s -> %s", runID, id, current.Kind())
	}
	return current, nil
}

// ValidateAll runs every validation-category rule in the catalogue
// against text and returns a map of rule ID to result. All validations
// run even when one returns false; only an error aborts the batch. The
// key set is exactly the validation rule IDs present in the catalogue.
func (e *Engine) ValidateAll(text string, ctx operation.Params) (map[string]bool, error) {
	results := make(map[string]bool)
	for _, desc := range e.catalogue.Descriptors() {
		if desc.Category != rule.CategoryValidation {
			continue
		}
		out, err := e.Apply(desc.ID, rule.Text(text), ctx)
		if err != nil {
			return nil, err
		}
		passed, ok := out.AsBool()
		if !ok {
			return nil, fmt.Errorf("rule %q: validation returned %s, want bool", desc.ID, out.Kind())
		}
		results[desc.ID] = passed
	}
	return results, nil
}

// RuleInfo returns the descriptor registered under ruleID for
// introspection by callers and tooling.
func (e *Engine) RuleInfo(ruleID string) (rule.Descriptor, bool) {
	return e.catalogue.Get(ruleID)
}

// Catalogue returns the catalogue the engine dispatches against.
func (e *Engine) Catalogue() *rule.Catalogue {
	return e.catalogue
}

// lookup resolves an operation name against the configured registry.
func (e *Engine) lookup(name string) (operation.Operation, bool) {
	if e.registry != nil {
		return e.registry.Get(name)
	}
	return operation.Get(name)
}

// mergeParams overlays runtime context values onto static defaults
// (runtime wins) and keeps only the parameters the operation accepts.
func mergeParams(static map[string]any, ctx operation.Params, accepted []string) operation.Params {
	merged := make(operation.Params, len(accepted))
	for _, name := range accepted {
		if v, ok := static[name]; ok {
			merged[name] = v
		}
		if v, ok := ctx[name]; ok {
			merged[name] = v
		}
	}
	return merged
}
