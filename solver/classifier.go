// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package solver provides math question detection, a constrained arithmetic
// evaluator, and the delegate-or-local resolution strategy used by the demo
// agents.
package solver

import (
	"regexp"
	"strings"
)

// mathPatterns is the heuristic gate for math questions: arithmetic
// operators, known function calls, and imperative or interrogative cue
// words. False positives are tolerated; downstream evaluation falls back to
// generic handling when nothing evaluates.
var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*[\+\-\*\/\^\%]\s*\d+`),
	regexp.MustCompile(`(sqrt|sin|cos|tan|log|exp)\s*\(`),
	regexp.MustCompile(`calculate\s+`),
	regexp.MustCompile(`compute\s+`),
	regexp.MustCompile(`solve\s+`),
	regexp.MustCompile(`what is\s+\d+`),
	regexp.MustCompile(`what's\s+\d+`),
	regexp.MustCompile(`equals\s+`),
	regexp.MustCompile(`equal to\s+`),
}

// IsMathQuestion reports whether the text looks like a math question or
// expression. It is a heuristic, not a parser.
func IsMathQuestion(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range mathPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
