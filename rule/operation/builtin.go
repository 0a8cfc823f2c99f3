//
// Tencent is pleased to support the open source community by making trpc-textprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-textprep-go is licensed under the Apache License Version 2.0.
//
//

package operation

// Names of the built-in operations. Catalogue definitions refer to
// operations by these keys.
const (
	OpIsNonEmpty                = "is_non_empty"
	OpHasMinimumWords           = "has_minimum_words"
	OpDetectQuestionAndDomain   = "detect_question_and_domain"
	OpChunkTextWithTokenizer    = "chunk_text_with_tokenizer"
	OpSanitizeOffensiveLanguage = "sanitize_offensive_language"
	OpMaskPII                   = "mask_pii"
	OpNormalizeText             = "normalize_text"
	OpSplitIntoSentences        = "split_into_sentences"
	OpRemoveURLs                = "remove_urls"
	OpRemoveHTMLTags            = "remove_html_tags"
)

func init() {
	registerBuiltins(globalRegistry)
}

// registerBuiltins registers the built-in operation set on the given
// registry.
func registerBuiltins(r *Registry) {
	r.MustRegister(nonEmptyOp{})
	r.MustRegister(minWordsOp{})
	r.MustRegister(questionDomainOp{})
	r.MustRegister(chunkOp{})
	r.MustRegister(sanitizeOp{})
	r.MustRegister(piiOp{})
	r.MustRegister(normalizeOp{})
	r.MustRegister(sentenceOp{})
	r.MustRegister(urlOp{})
	r.MustRegister(htmlOp{})
}

// RegisterBuiltins registers the built-in operations on a custom
// registry. Useful when an engine is built against a registry other than
// the global one.
func RegisterBuiltins(r *Registry) {
	registerBuiltins(r)
}
