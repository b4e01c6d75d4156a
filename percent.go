// percent.go: the context-sensitive "business" percent key
//
// What this file does
// -------------------
// Percent on a desk calculator is not a modulo. Its meaning depends on the
// governing operator: after '+' or '-' it means "that percentage OF the
// left operand" (200 + 10% adds 20, not 0.1), while after '*', '/', or with
// no context at all it is a plain percent-to-fraction conversion (50% is
// 0.5).
//
// ResolvePercent inspects the stream tail, picks the value B being operated
// on (the pending buffer if non-empty, else the last committed number),
// looks one operator and one operand further back for the governing pair
// (A, op), computes the transform, and rewrites B in place. The rewritten
// text goes through RoundSmart so the stream never accumulates float noise.
//
// No-op conditions (the stream is left untouched):
//   - the tail is an operator, so there is no B to transform,
//   - the stream is empty,
//   - B does not parse to a finite double.
package calc

import (
	"math"
	"strconv"
)

// ResolvePercent applies the percent transform to the stream tail. It
// reports whether a rewrite happened.
func ResolvePercent(ts *TokenStream) bool {
	text, aIdx, inPending := percentTarget(ts)
	if text == "" && !inPending {
		return false
	}

	b, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(b) || math.IsInf(b, 0) {
		return false
	}

	r := b / 100
	if a, op, ok := governingPair(ts.toks, aIdx); ok && (op == '+' || op == '-') {
		// "B percent of A": 200 + 10% rewrites the 10 to 20.
		r = a * (b / 100)
	}

	if inPending {
		ts.rewritePending(RoundSmart(r))
	} else {
		ts.rewriteLast(RoundSmart(r))
	}
	return true
}

// percentTarget locates B. It returns B's text, the index where the
// governing operand A would sit, and whether B lives in the pending buffer.
// An empty text with inPending=false means percent has nothing to act on.
func percentTarget(ts *TokenStream) (text string, aIdx int, inPending bool) {
	if ts.pending != "" {
		// A sits two back from the end: [... A op | pending].
		return ts.pending, len(ts.toks) - 2, true
	}
	n := len(ts.toks)
	if n == 0 || !ts.toks[n-1].IsNumber() {
		return "", -1, false
	}
	// A sits three back: [... A op B].
	return ts.toks[n-1].Text, n - 3, false
}

// governingPair reads the operand/operator pair preceding B: toks[aIdx]
// must be a number parsing to a finite double and toks[aIdx+1] an operator.
func governingPair(toks []Token, aIdx int) (a float64, op OpKind, ok bool) {
	if aIdx < 0 || aIdx+1 >= len(toks) {
		return 0, 0, false
	}
	if !toks[aIdx].IsNumber() || !toks[aIdx+1].IsOperator() {
		return 0, 0, false
	}
	a, err := strconv.ParseFloat(toks[aIdx].Text, 64)
	if err != nil || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, 0, false
	}
	return a, toks[aIdx+1].Text[0], true
}
