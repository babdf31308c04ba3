package gentests

import (
	"strings"
	"testing"
	"time"

	"github.com/vic/lcalc/pkg/lambda"
	"github.com/vic/lcalc/pkg/reduce"
)

// Generated cases must normalize well within this budget.
const maxSteps = 100000

func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	r := reduce.New(reduce.WithMaxSteps(maxSteps))
	r.EnableTrace(16)

	start := time.Now()
	actualTerm, err := r.Normalize(term)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: %v", testName, err)
	}

	// Binder-distance terms are alpha-equivalent exactly when they are
	// structurally equal, so no renaming is needed before comparing.
	if !lambda.Equal(actualTerm, expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s",
			testName, inputStr, lambda.Render(expectedTerm), lambda.Render(actualTerm))
	}

	stats := r.Stats()
	t.Logf("%s: %d reductions (%d head) in %v, max depth %d",
		testName, stats.BetaReductions, stats.HeadReductions, elapsed, stats.MaxBinderDepth)
	for _, ev := range r.TraceSnapshot() {
		t.Logf("%s: step %d %s at depth %d", testName, ev.Step, ev.Rule, ev.Depth)
	}
}
