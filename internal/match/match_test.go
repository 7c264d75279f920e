package match

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "PARIS", "paris"},
		{"trim", "  paris  ", "paris"},
		{"collapse whitespace", "new   york\tcity", "new york city"},
		{"diacritics", "Crème Brûlée", "creme brulee"},
		{"mixed", "  SÃO  Paulo ", "sao paulo"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Crème Brûlée", "  A  B  C ", "ﬂavor", "München", "東京"}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestDiceCoefficient(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "night", "night", 1},
		{"disjoint", "abc", "xyz", 0},
		{"single char unequal", "a", "ab", 0},
		{"both single char equal", "a", "a", 1},
		{"partial overlap", "night", "nacht", 0.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiceCoefficient(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("DiceCoefficient(%q, %q) = %.4f, want %.4f", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	t.Run("exact after normalization", func(t *testing.T) {
		r := Grade("Paris", "paris")
		if !r.Exact || r.Close || r.Quality != QualityExact || r.Score != 1 {
			t.Errorf("got %+v, want exact with quality 5", r)
		}
	})

	t.Run("close match", func(t *testing.T) {
		r := Grade("Pari", "Paris")
		if r.Exact || !r.Close || r.Quality != QualityClose {
			t.Errorf("got %+v, want close with quality 3", r)
		}
		if r.Score < CloseThreshold {
			t.Errorf("score %.4f below close threshold", r.Score)
		}
	})

	t.Run("wrong answer", func(t *testing.T) {
		r := Grade("xyz", "Paris")
		if r.Exact || r.Close || r.Quality != QualityWrong {
			t.Errorf("got %+v, want wrong with quality 1", r)
		}
	})

	t.Run("diacritics ignored", func(t *testing.T) {
		r := Grade("creme brulee", "Crème Brûlée")
		if !r.Exact {
			t.Errorf("got %+v, want exact", r)
		}
	})

	t.Run("empty answer", func(t *testing.T) {
		r := Grade("", "Paris")
		if r.Quality != QualityWrong {
			t.Errorf("got quality %d, want 1", r.Quality)
		}
	})
}
