// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package solver

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	binaryRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([\+\-\*\/\^])\s*(\d+(?:\.\d+)?)`)
	functionRe   = regexp.MustCompile(`(sqrt|sin|cos|tan|log|exp)\s*\(\s*(\d+(?:\.\d+)?)\s*\)`)
	expressionRe = regexp.MustCompile(`\d+(?:\.\d+)?(?:\s*[\+\-\*\/\^\%]\s*\d+(?:\.\d+)?)+`)
	integerRe    = regexp.MustCompile(`\d+`)
)

// FormatNumber renders a result without a trailing ".0" for whole values.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// applyFunction evaluates one of the six supported unary functions.
// log is base 10, matching the demo protocol.
func applyFunction(name string, arg float64) (float64, error) {
	switch name {
	case "sqrt":
		return math.Sqrt(arg), nil
	case "sin":
		return math.Sin(arg), nil
	case "cos":
		return math.Cos(arg), nil
	case "tan":
		return math.Tan(arg), nil
	case "log":
		return math.Log10(arg), nil
	case "exp":
		return math.Exp(arg), nil
	default:
		return 0, fmt.Errorf("unknown function: %s", name)
	}
}

// SolveLocally evaluates a math question without a delegate. It never
// fails: every branch, including division by zero and unparsable input,
// renders an explanatory string.
func SolveLocally(text string) string {
	if m := binaryRe.FindStringSubmatch(text); m != nil {
		a, errA := strconv.ParseFloat(m[1], 64)
		b, errB := strconv.ParseFloat(m[3], 64)
		if errA != nil || errB != nil {
			return fmt.Sprintf("Error solving math problem locally: could not parse numbers in %q", m[0])
		}
		op := m[2]

		var result float64
		switch op {
		case "+":
			result = a + b
		case "-":
			result = a - b
		case "*":
			result = a * b
		case "/":
			if b == 0 {
				return fmt.Sprintf("(Local calculation) %s / %s = Cannot divide by zero", m[1], m[3])
			}
			result = a / b
		case "^":
			result = math.Pow(a, b)
		}
		return fmt.Sprintf("(Local calculation) %s %s %s = %s", m[1], op, m[3], FormatNumber(result))
	}

	if m := functionRe.FindStringSubmatch(text); m != nil {
		arg, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return fmt.Sprintf("Error solving math problem locally: could not parse number in %q", m[0])
		}
		result, err := applyFunction(m[1], arg)
		if err != nil {
			return fmt.Sprintf("Error solving math problem locally: %v", err)
		}
		return fmt.Sprintf("(Local calculation) %s(%s) = %s", m[1], m[2], FormatNumber(result))
	}

	// Last resort: report the sum of the first two integers in the text,
	// making clear they are just the first two numbers found.
	if nums := integerRe.FindAllString(text, 2); len(nums) == 2 {
		a, errA := strconv.Atoi(nums[0])
		b, errB := strconv.Atoi(nums[1])
		if errA != nil || errB != nil {
			return fmt.Sprintf("Error solving math problem locally: could not parse numbers in %q", text)
		}
		return fmt.Sprintf("(Local calculation) Found numbers %d and %d. Their sum is %d. These are just the first two numbers in your text, not a derived expression", a, b, a+b)
	}

	return fmt.Sprintf("I couldn't identify a math problem in your query: '%s'", text)
}

// ExtractExpression returns the first operator chain in the text, e.g.
// "2 + 3 * 4", or false if none is present.
func ExtractExpression(text string) (string, bool) {
	m := expressionRe.FindString(text)
	return m, m != ""
}

// ExtractFunctionCall returns the first supported function call in the
// text, e.g. "sqrt(16)", or false if none is present.
func ExtractFunctionCall(text string) (name, arg string, ok bool) {
	m := functionRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// EvaluateFunction applies one of the supported unary functions to arg.
func EvaluateFunction(name string, arg float64) (float64, error) {
	return applyFunction(name, arg)
}

// FirstTwoIntegers returns the first two integers appearing in the text.
func FirstTwoIntegers(text string) (a, b int, ok bool) {
	nums := integerRe.FindAllString(text, 2)
	if len(nums) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(nums[0])
	b, errB := strconv.Atoi(nums[1])
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

// operator precedence; ^ binds tightest and is right-associative.
var precedence = map[byte]int{'+': 1, '-': 1, '*': 2, '/': 2, '%': 2, '^': 3}

// EvaluateExpression evaluates an operator chain over + - * / ^ % with
// standard precedence. The grammar is closed: numbers and the listed binary
// operators only, no parentheses, variables, or calls. Division or modulo
// by zero is an error.
func EvaluateExpression(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 || len(tokens)%2 == 0 {
		return 0, fmt.Errorf("malformed expression: %q", expr)
	}

	// Shunting-yard over the token stream.
	var output []float64
	var ops []byte

	apply := func(op byte) error {
		if len(output) < 2 {
			return fmt.Errorf("malformed expression: %q", expr)
		}
		b := output[len(output)-1]
		a := output[len(output)-2]
		output = output[:len(output)-2]

		var v float64
		switch op {
		case '+':
			v = a + b
		case '-':
			v = a - b
		case '*':
			v = a * b
		case '/':
			if b == 0 {
				return fmt.Errorf("division by zero")
			}
			v = a / b
		case '%':
			if b == 0 {
				return fmt.Errorf("modulo by zero")
			}
			v = math.Mod(a, b)
		case '^':
			v = math.Pow(a, b)
		}
		output = append(output, v)
		return nil
	}

	for i, tok := range tokens {
		if i%2 == 0 {
			n, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, fmt.Errorf("parse number %q: %w", tok, err)
			}
			output = append(output, n)
			continue
		}

		op := tok[0]
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			// ^ is right-associative, the rest left-associative.
			if precedence[top] > precedence[op] || (precedence[top] == precedence[op] && op != '^') {
				ops = ops[:len(ops)-1]
				if err := apply(top); err != nil {
					return 0, err
				}
				continue
			}
			break
		}
		ops = append(ops, op)
	}

	for len(ops) > 0 {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if err := apply(op); err != nil {
			return 0, err
		}
	}

	if len(output) != 1 {
		return 0, fmt.Errorf("malformed expression: %q", expr)
	}
	return output[0], nil
}

// tokenize splits an expression into alternating number and operator
// tokens.
func tokenize(expr string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			tokens = append(tokens, expr[i:j])
			i = j
		case strings.ContainsRune("+-*/%^", rune(c)):
			tokens = append(tokens, string(c))
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q in expression", c)
		}
	}
	return tokens, nil
}
