// Package builtin holds the collections seeded into a fresh store.
package builtin

import (
	"strings"

	"github.com/justvibes99/enumerate/internal/domain"
)

func itemSlug(prompt string) string {
	return strings.ReplaceAll(strings.ToLower(prompt), " ", "-")
}

// Sets returns the built-in collections. Seeding skips ids that already
// exist, so user edits to these survive restarts.
func Sets() []domain.Collection {
	return []domain.Collection{
		natoAlphabet(),
		greekAlphabet(),
		romanNumerals(),
		worldCapitals(),
	}
}

func pairs(collectionID string, ps [][2]string) []domain.Item {
	items := make([]domain.Item, len(ps))
	for i, p := range ps {
		items[i] = domain.Item{
			ID:     collectionID + "-" + itemSlug(p[0]),
			Prompt: p[0],
			Match:  p[1],
		}
	}
	return items
}

func natoAlphabet() domain.Collection {
	c := domain.Collection{
		ID:          "builtin-nato-alphabet",
		Title:       "NATO Phonetic Alphabet",
		Description: "Letters and their NATO phonetic code words",
		PromptLabel: "Letter",
		MatchLabel:  "Code word",
		IsBuiltIn:   true,
	}
	c.Items = pairs(c.ID, [][2]string{
		{"A", "Alfa"}, {"B", "Bravo"}, {"C", "Charlie"}, {"D", "Delta"},
		{"E", "Echo"}, {"F", "Foxtrot"}, {"G", "Golf"}, {"H", "Hotel"},
		{"I", "India"}, {"J", "Juliett"}, {"K", "Kilo"}, {"L", "Lima"},
		{"M", "Mike"}, {"N", "November"}, {"O", "Oscar"}, {"P", "Papa"},
		{"Q", "Quebec"}, {"R", "Romeo"}, {"S", "Sierra"}, {"T", "Tango"},
		{"U", "Uniform"}, {"V", "Victor"}, {"W", "Whiskey"}, {"X", "Xray"},
		{"Y", "Yankee"}, {"Z", "Zulu"},
	})
	return c
}

func greekAlphabet() domain.Collection {
	c := domain.Collection{
		ID:          "builtin-greek-alphabet",
		Title:       "Greek Alphabet",
		Description: "Greek letters and their names",
		PromptLabel: "Letter",
		MatchLabel:  "Name",
		IsBuiltIn:   true,
	}
	c.Items = pairs(c.ID, [][2]string{
		{"α", "alpha"}, {"β", "beta"}, {"γ", "gamma"}, {"δ", "delta"},
		{"ε", "epsilon"}, {"ζ", "zeta"}, {"η", "eta"}, {"θ", "theta"},
		{"ι", "iota"}, {"κ", "kappa"}, {"λ", "lambda"}, {"μ", "mu"},
		{"ν", "nu"}, {"ξ", "xi"}, {"ο", "omicron"}, {"π", "pi"},
		{"ρ", "rho"}, {"σ", "sigma"}, {"τ", "tau"}, {"υ", "upsilon"},
		{"φ", "phi"}, {"χ", "chi"}, {"ψ", "psi"}, {"ω", "omega"},
	})
	return c
}

func romanNumerals() domain.Collection {
	c := domain.Collection{
		ID:          "builtin-roman-numerals",
		Title:       "Roman Numerals",
		Description: "Numbers and their Roman numeral forms",
		PromptLabel: "Number",
		MatchLabel:  "Numeral",
		IsBuiltIn:   true,
	}
	c.Items = pairs(c.ID, [][2]string{
		{"1", "I"}, {"4", "IV"}, {"5", "V"}, {"9", "IX"},
		{"10", "X"}, {"40", "XL"}, {"50", "L"}, {"90", "XC"},
		{"100", "C"}, {"400", "CD"}, {"500", "D"}, {"900", "CM"},
		{"1000", "M"}, {"1994", "MCMXCIV"}, {"2026", "MMXXVI"},
	})
	return c
}

func worldCapitals() domain.Collection {
	c := domain.Collection{
		ID:          "builtin-world-capitals",
		Title:       "World Capitals",
		Description: "Countries and their capital cities",
		PromptLabel: "Country",
		MatchLabel:  "Capital",
		IsBuiltIn:   true,
	}
	c.Items = pairs(c.ID, [][2]string{
		{"France", "Paris"}, {"Japan", "Tokyo"}, {"Italy", "Rome"},
		{"Germany", "Berlin"}, {"Spain", "Madrid"}, {"Portugal", "Lisbon"},
		{"Canada", "Ottawa"}, {"Australia", "Canberra"}, {"Brazil", "Brasília"},
		{"Egypt", "Cairo"}, {"Kenya", "Nairobi"}, {"India", "New Delhi"},
		{"China", "Beijing"}, {"Argentina", "Buenos Aires"}, {"Norway", "Oslo"},
		{"Finland", "Helsinki"}, {"Greece", "Athens"}, {"Turkey", "Ankara"},
		{"Mexico", "Mexico City"}, {"South Korea", "Seoul"},
	})
	return c
}
