// Package match grades free-text answers by approximate string similarity.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CloseThreshold is the Dice score at or above which a non-exact answer
// still counts as close enough to pass.
const CloseThreshold = 0.8

// SM-2 quality values produced by grading.
const (
	QualityExact = 5
	QualityClose = 3
	QualityWrong = 1
)

// Result is the outcome of grading one typed answer.
type Result struct {
	Exact   bool
	Close   bool
	Score   float64
	Quality int
}

// stripMarks removes combining diacritical marks after NFD decomposition.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize prepares a string for comparison: decompose and drop
// diacritics, lowercase, trim, and collapse internal whitespace.
func Normalize(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transformation of valid UTF-8 cannot fail here; fall back to
		// the raw string for anything pathological.
		stripped = s
	}
	lowered := strings.ToLower(stripped)
	return strings.Join(strings.Fields(lowered), " ")
}

// DiceCoefficient computes the bigram overlap between two strings,
// from 0 (disjoint) to 1 (identical). Strings shorter than two runes
// have no bigrams and score 0 unless equal.
func DiceCoefficient(a, b string) float64 {
	if a == b {
		return 1
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	intersections := 0
	for i := 0; i < len(rb)-1; i++ {
		bigram := string(rb[i : i+2])
		if bigrams[bigram] > 0 {
			bigrams[bigram]--
			intersections++
		}
	}

	return 2 * float64(intersections) / float64(len(ra)-1+len(rb)-1)
}

// Grade compares a user's answer against the reference answer. It never
// fails: any pair of strings produces a result with a quality of 5
// (exact), 3 (close), or 1 (wrong).
func Grade(userAnswer, correctAnswer string) Result {
	normUser := Normalize(userAnswer)
	normCorrect := Normalize(correctAnswer)

	if normUser == normCorrect {
		return Result{Exact: true, Score: 1, Quality: QualityExact}
	}

	score := DiceCoefficient(normUser, normCorrect)
	if score >= CloseThreshold {
		return Result{Close: true, Score: score, Quality: QualityClose}
	}
	return Result{Score: score, Quality: QualityWrong}
}
