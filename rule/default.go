//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package rule

// defaultDescriptors is the built-in rule set for preparing raw user text
// for retrieval and LLM pipelines. Operation names refer to the built-in
// operations registered by the operation package.
var defaultDescriptors = []Descriptor{
	{
		ID:          "R1",
		Category:    CategoryValidation,
		Operation:   "is_non_empty",
		RuleText:    "Text must not be empty.",
		Description: "Validates that the input text contains at least one non-whitespace character.",
	},
	{
		ID:          "R2",
		Category:    CategoryValidation,
		Operation:   "has_minimum_words",
		Params:      map[string]any{"n": 3},
		RuleText:    "Text must contain N words.",
		Description: "Validates that the input text contains at least N whitespace-separated words.",
	},
	{
		ID:        "R3",
		Category:  "intent_and_domain_routing",
		Operation: "detect_question_and_domain",
		Params: map[string]any{
			"domains": []Domain{
				{Name: "finance", Keywords: []string{"refund", "payment", "pricing", "invoice"}},
				{Name: "account", Keywords: []string{"login", "password", "account", "signup"}},
				{Name: "policy", Keywords: []string{"policy", "terms", "conditions", "privacy"}},
			},
		},
		RuleText:    "If the input text is a question, identify the domain of the question using domain-specific keywords.",
		Description: "Detects question intent and routes the query to the appropriate domain for downstream retrieval.",
	},
	{
		ID:        "R4",
		Category:  "model_aware_chunking",
		Operation: "chunk_text_with_tokenizer",
		Params: map[string]any{
			"max_tokens":     512,
			"overlap_tokens": 50,
		},
		RuleText:    "If the text exceeds the model token limit, split it into overlapping chunks using the model tokenizer.",
		Description: "Ensures chunks respect model token limits and preserve semantic coherence for embedding or LLM usage.",
	},
	{
		ID:          "R5",
		Category:    "text_sanitization",
		Operation:   "sanitize_offensive_language",
		RuleText:    "Remove or mask all offensive and abusive words from the text before downstream NLP processing.",
		Description: "Uses a profanity word list to mask offensive language before downstream processing.",
	},
	{
		ID:          "R6",
		Category:    "pii_masking",
		Operation:   "mask_pii",
		RuleText:    "Detect and mask personally identifiable information such as email addresses and phone numbers.",
		Description: "Masks emails and phone numbers so that PII never reaches downstream NLP or AI processing.",
	},
	{
		ID:          "R7",
		Category:    "text_normalization",
		Operation:   "normalize_text",
		RuleText:    "Normalize text by removing invisible unicode characters and standardizing whitespace.",
		Description: "Normalizes unicode artifacts and whitespace to improve tokenizer and model stability.",
	},
	{
		ID:          "R8",
		Category:    "sentence_normalization",
		Operation:   "split_into_sentences",
		RuleText:    "Split input text into well-formed sentences using punctuation.",
		Description: "Segments text into sentences before chunking, embedding, or retrieval.",
	},
	{
		ID:          "R9",
		Category:    "noise_removal",
		Operation:   "remove_urls",
		RuleText:    "Remove URLs and web artifacts from text before downstream NLP processing.",
		Description: "Eliminates non-linguistic URL noise to improve embedding quality and retrieval performance.",
	},
	{
		ID:          "R10",
		Category:    "markup_cleanup",
		Operation:   "remove_html_tags",
		RuleText:    "Remove HTML and markup tags from the text before downstream NLP processing.",
		Description: "Strips HTML and markup artifacts to produce clean plain text.",
	},
}

// DefaultCatalogue returns the built-in catalogue. Each call returns a
// fresh catalogue so callers cannot interfere with each other.
func DefaultCatalogue() *Catalogue {
	c, err := NewCatalogue(defaultDescriptors)
	if err != nil {
		// The built-in descriptors are statically known to be valid.
		panic(err)
	}
	return c
}
