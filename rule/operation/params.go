//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package operation

import (
	"trpc.group/trpc-go/trpc-textprep-go/rule"
	"trpc.group/trpc-go/trpc-textprep-go/tokenizer"
)

// Params carries the resolved parameters of one operation call: the
// descriptor's static defaults overlaid by the caller's runtime context,
// filtered to the operation's declared parameter names. The same type is
// used for the runtime context itself.
type Params map[string]any

// Int returns the integer parameter under key. YAML-sourced catalogues
// may decode numbers as int, int64, or float64; all are accepted.
func (p Params) Int(key string) (int, bool) {
	switch n := p[key].(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// String returns the string parameter under key.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// StringSlice returns the string list parameter under key. YAML decodes
// sequences as []any, which is accepted alongside []string.
func (p Params) StringSlice(key string) ([]string, bool) {
	switch v := p[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Tokenizer returns the injected tokenizer capability under key.
func (p Params) Tokenizer(key string) (tokenizer.Tokenizer, bool) {
	tok, ok := p[key].(tokenizer.Tokenizer)
	return tok, ok
}

// Domains returns the ordered domain list parameter under key. Accepts
// []rule.Domain from Go-defined catalogues and the generic decoding a
// YAML catalogue produces.
func (p Params) Domains(key string) ([]rule.Domain, bool) {
	switch v := p[key].(type) {
	case []rule.Domain:
		return v, true
	case []any:
		out := make([]rule.Domain, 0, len(v))
		for _, item := range v {
			fields, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			var d rule.Domain
			if d.Name, ok = Params(fields).String("name"); !ok {
				return nil, false
			}
			if d.Keywords, ok = Params(fields).StringSlice("keywords"); !ok {
				return nil, false
			}
			out = append(out, d)
		}
		return out, true
	default:
		return nil, false
	}
}
