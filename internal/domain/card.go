package domain

import (
	"fmt"
	"strings"
)

// Direction says which side of an item is shown as the prompt.
type Direction string

const (
	// Forward shows the prompt and expects the match.
	Forward Direction = "forward"
	// Reverse shows the match and expects the prompt.
	Reverse Direction = "reverse"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == Forward || d == Reverse
}

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

// ReviewCard holds the SM-2 scheduling state for one (collection, item,
// direction) triple. Timestamps are epoch milliseconds; zero means never.
type ReviewCard struct {
	ID             string    `json:"id" validate:"required"`
	ItemID         string    `json:"itemId" validate:"required"`
	CollectionID   string    `json:"collectionId" validate:"required"`
	Direction      Direction `json:"direction" validate:"oneof=forward reverse"`
	EaseFactor     float64   `json:"easeFactor" validate:"gte=1.3"`
	Interval       int       `json:"interval" validate:"gte=0"`
	Repetitions    int       `json:"repetitions" validate:"gte=0"`
	NextReviewDate int64     `json:"nextReviewDate" validate:"gte=0"`
	CorrectCount   int       `json:"correctCount" validate:"gte=0"`
	IncorrectCount int       `json:"incorrectCount" validate:"gte=0"`
	LastReviewedAt int64     `json:"lastReviewedAt" validate:"gte=0"`
}

// CardID builds the composite review-card key. The double-colon separator
// keeps lookups unambiguous across collections and directions.
func CardID(collectionID, itemID string, direction Direction) string {
	return collectionID + "::" + itemID + "::" + string(direction)
}

// NewReviewCard returns an unscheduled card with the SM-2 starting state.
func NewReviewCard(collectionID, itemID string, direction Direction) ReviewCard {
	return ReviewCard{
		ID:           CardID(collectionID, itemID, direction),
		ItemID:       itemID,
		CollectionID: collectionID,
		Direction:    direction,
		EaseFactor:   2.5,
	}
}

// IsNew reports whether the card has never been reviewed. This is the
// canonical marker: repetitions can return to zero after a failed review.
func (c ReviewCard) IsNew() bool {
	return c.LastReviewedAt == 0
}

// IsDue reports whether the card was reviewed before and its next review
// date has passed. now is epoch milliseconds.
func (c ReviewCard) IsDue(now int64) bool {
	return c.LastReviewedAt > 0 && c.NextReviewDate <= now
}

// MasteryInterval is the interval, in days, at which a reviewed card
// counts as mastered.
const MasteryInterval = 21
