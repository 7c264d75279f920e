package domain

import (
	"fmt"
	"strings"
)

// Mode is the kind of quiz being run.
type Mode string

const (
	Flashcard      Mode = "flashcard"
	MultipleChoice Mode = "multiple-choice"
	TypedAnswer    Mode = "typed-answer"
)

// IsValid reports whether m is a known quiz mode.
func (m Mode) IsValid() bool {
	switch m {
	case Flashcard, MultipleChoice, TypedAnswer:
		return true
	}
	return false
}

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown quiz mode %q", s)
	}
	return m, nil
}

// ItemResult records the outcome of one graded card within a session.
type ItemResult struct {
	ItemID      string `json:"itemId"`
	Correct     bool   `json:"correct"`
	UserAnswer  string `json:"userAnswer,omitempty"`
	TimeSpentMs int64  `json:"timeSpentMs"`
}

// QuizSession is an append-only record of one completed study session.
// It is written once at completion and never updated.
type QuizSession struct {
	ID             string       `json:"id" validate:"required"`
	CollectionID   string       `json:"collectionId" validate:"required"`
	Mode           Mode         `json:"mode" validate:"oneof=flashcard multiple-choice typed-answer"`
	Direction      Direction    `json:"direction" validate:"oneof=forward reverse"`
	StartedAt      int64        `json:"startedAt"`
	CompletedAt    int64        `json:"completedAt"`
	TotalCards     int          `json:"totalCards"`
	CorrectCount   int          `json:"correctCount"`
	IncorrectCount int          `json:"incorrectCount"`
	ItemResults    []ItemResult `json:"itemResults"`
}

// SetProgress is derived per-collection state. It is never stored,
// always recomputed from cards and sessions.
type SetProgress struct {
	CollectionID  string `json:"collectionId"`
	TotalItems    int    `json:"totalItems"`
	MasteredCount int    `json:"masteredCount"`
	LearningCount int    `json:"learningCount"`
	NewCount      int    `json:"newCount"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastStudiedAt int64  `json:"lastStudiedAt"`
}

// AppSettings is the single persisted settings record.
type AppSettings struct {
	NewCardsPerDay int `json:"newCardsPerDay"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() AppSettings {
	return AppSettings{NewCardsPerDay: 15}
}
