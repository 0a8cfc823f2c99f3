//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package rule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogueFile is the YAML document shape of a catalogue definition.
type catalogueFile struct {
	Rules []Descriptor `yaml:"rules"`
}

// ParseCatalogue builds a catalogue from a YAML definition of the form:
//
//	rules:
//	  - id: R2
//	    category: validation
//	    operation: has_minimum_words
//	    params:
//	      n: 3
//	    rule_text: Text must contain N words.
//
// The catalogue is the configuration surface of the engine: adding,
// removing, or renaming rules happens here, not in code.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	return NewCatalogue(file.Rules)
}

// LoadCatalogue reads a YAML catalogue definition from path.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	return ParseCatalogue(data)
}
