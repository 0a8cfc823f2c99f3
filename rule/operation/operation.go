//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

// Package operation defines the text operation interface, the registry the
// dispatch resolver looks operations up in, and the built-in operation set.
package operation

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-textprep-go/rule"
)

// ErrUnknownOperation is returned when a descriptor references an
// operation name that is not registered.
var ErrUnknownOperation = errors.New("operation: unknown operation")

// Operation is a named, stateless text transform or predicate. Operations
// are pure functions of their primary input and parameters; they hold no
// state across calls and are safe for concurrent use.
type Operation interface {
	// Name returns the stable registry key of the operation.
	Name() string
	// ParamNames declares the closed set of parameter names the
	// operation accepts. The resolver drops merged parameters outside
	// this set before calling Apply.
	ParamNames() []string
	// Apply runs the operation on input with the resolved parameters.
	// A required parameter missing from params is the operation's own
	// error to raise; the resolver does not validate up front.
	Apply(input rule.Value, params Params) (rule.Value, error)
}

// Registry manages operation registration and lookup by name.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry creates an empty operation registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register registers an operation under its name.
func (r *Registry) Register(op Operation) error {
	name := op.Name()
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("operation %q already registered", name)
	}
	r.ops[name] = op
	return nil
}

// MustRegister registers an operation and panics if registration fails.
// Used for init-time registration of built-in operations.
func (r *Registry) MustRegister(op Operation) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// Get retrieves an operation by name.
func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, exists := r.ops[name]
	return op, exists
}

// List returns all registered operation names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// globalRegistry holds the built-in operations plus anything callers
// register before building an engine.
var globalRegistry = NewRegistry()

// Register registers an operation in the global registry.
func Register(op Operation) error {
	return globalRegistry.Register(op)
}

// MustRegister registers an operation in the global registry and panics
// on failure.
func MustRegister(op Operation) {
	globalRegistry.MustRegister(op)
}

// Get retrieves an operation from the global registry.
func Get(name string) (Operation, bool) {
	return globalRegistry.Get(name)
}

// List returns all operation names in the global registry, sorted.
func List() []string {
	return globalRegistry.List()
}
