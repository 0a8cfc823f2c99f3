//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package rule

import "fmt"

// Catalogue is an ordered, immutable collection of rule descriptors. It is
// built once at startup and is safe for lock-free concurrent reads; it is
// never mutated afterwards.
type Catalogue struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewCatalogue builds a catalogue from the given descriptors, preserving
// their order. Descriptors are copied; later mutation of the input slice
// does not affect the catalogue.
func NewCatalogue(descriptors []Descriptor) (*Catalogue, error) {
	c := &Catalogue{
		descriptors: make([]Descriptor, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}
	copy(c.descriptors, descriptors)
	for i, d := range c.descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("descriptor %d: %w", i, ErrEmptyRuleID)
		}
		if _, exists := c.index[d.ID]; exists {
			return nil, fmt.Errorf("descriptor %q: %w", d.ID, ErrDuplicateRule)
		}
		c.index[d.ID] = i
	}
	return c, nil
}

// Get returns the descriptor registered under id.
func (c *Catalogue) Get(id string) (Descriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return c.descriptors[i], true
}

// Has reports whether a rule ID exists in the catalogue.
func (c *Catalogue) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Descriptors returns the descriptors in catalogue order. The slice is a
// copy and may be retained by the caller.
func (c *Catalogue) Descriptors() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// IDs returns the rule IDs in catalogue order.
func (c *Catalogue) IDs() []string {
	ids := make([]string, len(c.descriptors))
	for i, d := range c.descriptors {
		ids[i] = d.ID
	}
	return ids
}

// Len returns the number of descriptors in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.descriptors)
}
