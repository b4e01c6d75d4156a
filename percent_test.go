// percent_test.go
package calc

import "testing"

// --- pending-target cases ----------------------------------------------------

func Test_Percent_Additive_Context_Is_Percent_Of_A(t *testing.T) {
	// 200 + 10% : the 10 becomes 10% of 200 = 20.
	var ts TokenStream
	typeDigits(&ts, "200")
	ts.PushOperator('+')
	typeDigits(&ts, "10")

	if !ResolvePercent(&ts) {
		t.Fatalf("expected a rewrite")
	}
	wantPending(t, &ts, "20")
	wantTokens(t, &ts, []Token{Num("200"), Op('+')})
}

func Test_Percent_Subtractive_Context_Is_Percent_Of_A(t *testing.T) {
	// 80 - 25% : the 25 becomes 25% of 80 = 20.
	var ts TokenStream
	typeDigits(&ts, "80")
	ts.PushOperator('-')
	typeDigits(&ts, "25")

	ResolvePercent(&ts)
	wantPending(t, &ts, "20")
}

func Test_Percent_Multiplicative_Context_Is_Fraction(t *testing.T) {
	// 200 * 10% : plain conversion, 10 becomes 0.1 (not 20).
	var ts TokenStream
	typeDigits(&ts, "200")
	ts.PushOperator('*')
	typeDigits(&ts, "10")

	ResolvePercent(&ts)
	wantPending(t, &ts, "0.1")
}

func Test_Percent_No_Context_Is_Fraction(t *testing.T) {
	var ts TokenStream
	typeDigits(&ts, "50")

	ResolvePercent(&ts)
	wantPending(t, &ts, "0.5")
}

func Test_Percent_Then_Equals_Completes_The_Business_Sum(t *testing.T) {
	s := NewSession()
	feed(t, s, "200+10%=")
	wantResult(t, s, "220")
}

// --- committed-tail target ------------------------------------------------------

func Test_Percent_On_Last_Committed_Number(t *testing.T) {
	// Backspace after an operator leaves the stream ending in a committed
	// number with nothing pending: [200 + 10] <del-op>. Percent must then
	// look three tokens back for its context.
	var ts TokenStream
	typeDigits(&ts, "200")
	ts.PushOperator('+')
	typeDigits(&ts, "10")
	ts.PushOperator('+') // commits the 10: [200 + 10 +]
	ts.Backspace()       // drops the trailing +: [200 + 10]

	if !ResolvePercent(&ts) {
		t.Fatalf("expected a rewrite of the committed tail")
	}
	wantTokens(t, &ts, []Token{Num("200"), Op('+'), Num("20")})
	wantPending(t, &ts, "")
}

func Test_Percent_Committed_Tail_Without_Context(t *testing.T) {
	var ts TokenStream
	typeDigits(&ts, "50")
	ts.CommitPending()

	ResolvePercent(&ts)
	wantTokens(t, &ts, []Token{Num("0.5")})
}

// --- no-op conditions -------------------------------------------------------------

func Test_Percent_Operator_Tail_Is_NoOp(t *testing.T) {
	var ts TokenStream
	typeDigits(&ts, "5")
	ts.PushOperator('+')

	if ResolvePercent(&ts) {
		t.Fatalf("percent on an operator tail must not rewrite")
	}
	wantTokens(t, &ts, []Token{Num("5"), Op('+')})
}

func Test_Percent_Empty_Stream_Is_NoOp(t *testing.T) {
	var ts TokenStream
	if ResolvePercent(&ts) {
		t.Fatalf("percent on an empty stream must not rewrite")
	}
}

func Test_Percent_Unparseable_Pending_Is_NoOp(t *testing.T) {
	// A minus-seeded pending is not yet a number; percent must not touch it.
	var ts TokenStream
	ts.PushOperator('-')
	if ResolvePercent(&ts) {
		t.Fatalf("percent on a bare sign must not rewrite")
	}
	wantPending(t, &ts, "-")
}
