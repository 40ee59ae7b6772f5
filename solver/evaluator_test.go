// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package solver

import (
	"math"
	"strings"
	"testing"
)

func TestSolveLocally_Binary(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string
		want string
	}{
		"addition":         {"What is 12 + 7?", "19"},
		"subtraction":      {"10 - 4", "6"},
		"multiplication":   {"What is 25 * 13?", "325"},
		"division":         {"9 / 2", "4.5"},
		"power":            {"2 ^ 10", "1024"},
		"decimal operands": {"1.5 + 2.5", "4"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := SolveLocally(tt.text)
			if !strings.Contains(got, tt.want) {
				t.Errorf("SolveLocally(%q) = %q, want result containing %q", tt.text, got, tt.want)
			}
			if !strings.Contains(got, "(Local calculation)") {
				t.Errorf("SolveLocally(%q) = %q, want local calculation tag", tt.text, got)
			}
		})
	}
}

func TestSolveLocally_DivideByZero(t *testing.T) {
	t.Parallel()

	got := SolveLocally("5 / 0")
	if !strings.Contains(got, "Cannot divide by zero") {
		t.Errorf("SolveLocally(5 / 0) = %q, want divide-by-zero explanation", got)
	}
	if strings.Contains(got, "Inf") {
		t.Errorf("SolveLocally(5 / 0) = %q, must not render an infinity", got)
	}
}

func TestSolveLocally_Functions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string
		want float64
	}{
		"sqrt": {"sqrt(16)", 4},
		"sin":  {"sin(0)", 0},
		"cos":  {"cos(0)", 1},
		"tan":  {"tan(0)", 0},
		"log":  {"log(100)", 2},
		"exp":  {"exp(1)", math.E},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := SolveLocally(tt.text)
			if !strings.Contains(got, FormatNumber(tt.want)) {
				t.Errorf("SolveLocally(%q) = %q, want result containing %q", tt.text, got, FormatNumber(tt.want))
			}
		})
	}
}

func TestSolveLocally_FirstTwoNumbers(t *testing.T) {
	t.Parallel()

	got := SolveLocally("calculate with 3 and then 4 and maybe 5")
	if !strings.Contains(got, "3") || !strings.Contains(got, "4") || !strings.Contains(got, "7") {
		t.Errorf("SolveLocally() = %q, want sum of first two numbers", got)
	}
	if !strings.Contains(got, "first two numbers") {
		t.Errorf("SolveLocally() = %q, should note these are just the first two numbers found", got)
	}
}

func TestSolveLocally_NoExpression(t *testing.T) {
	t.Parallel()

	got := SolveLocally("tell me a story")
	if !strings.Contains(got, "couldn't identify a math problem") {
		t.Errorf("SolveLocally() = %q, want no-expression message", got)
	}
}

func TestExtractExpression(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text   string
		want   string
		wantOK bool
	}{
		"simple":         {"What is 25 * 13?", "25 * 13", true},
		"chain":          {"calculate 2+3*4 now", "2+3*4", true},
		"single number":  {"just 42 here", "", false},
		"no numbers":     {"nothing to see", "", false},
		"decimal chain":  {"1.5 + 2.25", "1.5 + 2.25", true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractExpression(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractExpression(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEvaluateExpression(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		expr    string
		want    float64
		wantErr bool
	}{
		"addition":               {expr: "2 + 3", want: 5},
		"precedence":             {expr: "2+3*4", want: 14},
		"left associative chain": {expr: "10 - 4 - 3", want: 3},
		"division":               {expr: "20 / 4 / 5", want: 1},
		"modulo":                 {expr: "10 % 3", want: 1},
		"power right assoc":      {expr: "2 ^ 3 ^ 2", want: 512},
		"power binds tighter":    {expr: "2 * 3 ^ 2", want: 18},
		"decimals":               {expr: "1.5 * 4", want: 6},
		"division by zero":       {expr: "1 / 0", wantErr: true},
		"modulo by zero":         {expr: "1 % 0", wantErr: true},
		"trailing operator":      {expr: "1 +", wantErr: true},
		"garbage":                {expr: "1 + x", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := EvaluateExpression(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EvaluateExpression(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EvaluateExpression(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestExtractFunctionCall(t *testing.T) {
	t.Parallel()

	name, arg, ok := ExtractFunctionCall("Calculate the square root: sqrt(144)")
	if !ok || name != "sqrt" || arg != "144" {
		t.Errorf("ExtractFunctionCall() = (%q, %q, %v), want (sqrt, 144, true)", name, arg, ok)
	}

	if _, _, ok := ExtractFunctionCall("no functions here"); ok {
		t.Error("ExtractFunctionCall() should not match plain text")
	}
}
