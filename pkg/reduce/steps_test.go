package reduce

import (
	"testing"

	"github.com/vic/lcalc/pkg/lambda"
)

// TestReductionCounts pins the number of beta contractions normal order
// performs. Normal order never reduces an argument that is later discarded,
// but it may reduce a duplicated argument more than once.
func TestReductionCounts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		steps    uint64
		head     uint64
	}{
		{"identity", `\x.x`, `\a.a`, 0, 0},
		{"id_id", `(\x.x) (\y.y)`, `\a.a`, 1, 0},
		{"K_combinator_2args", `(\x.\y.x) a b`, `a`, 2, 1},
		{"K_combinator_1arg", `(\x.\y.x) z`, `\a.z`, 1, 0},
		{"church_zero", `0 f x`, `x`, 2, 1},
		{"church_one", `1 f x`, `f x`, 2, 1},
		{"church_two", `2 f x`, `f (f x)`, 2, 1},
		{"boolean_true", `(\x.\y.x) a b c`, `a c`, 2, 2},
		{"boolean_false", `(\x.\y.y) a b c`, `b c`, 2, 2},
		{"self_app", `(\x.x x) (\y.y)`, `\a.a`, 2, 0},
		{"duplicated_redex", `(\f.f (f x)) (\y.y)`, `x`, 3, 0},
		{"discarded_divergent", `(\x.y) ((\x.x x) (\x.x x))`, `y`, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			res, err := r.Normalize(mustParse(t, tt.input))
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if got := lambda.Render(res); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}

			stats := r.Stats()
			if stats.BetaReductions != tt.steps {
				t.Errorf("expected %d reductions, got %d", tt.steps, stats.BetaReductions)
			}
			if stats.HeadReductions != tt.head {
				t.Errorf("expected %d head reductions, got %d", tt.head, stats.HeadReductions)
			}
		})
	}
}
