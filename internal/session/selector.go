// Package session selects review cards for a study session and runs the
// quiz state machine over them.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/justvibes99/enumerate/internal/domain"
	"github.com/justvibes99/enumerate/internal/sm2"
	"github.com/justvibes99/enumerate/internal/store"
)

// MaxSessionCards caps the number of cards in one session.
const MaxSessionCards = 20

// Engine coordinates card selection, grading, and session persistence
// over a shared store handle.
type Engine struct {
	store *store.Store
	rng   *rand.Rand
	now   func() int64
}

// NewEngine creates an engine bound to the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{
		store: s,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// SelectCards returns the ordered cards to present in one session for a
// (collection, direction) pair. Missing cards are created first, in a
// single batch write, so exactly one card exists per item afterwards.
//
// Ordering is due-first: due cards sorted most-overdue first (ties broken
// by lowest ease factor, hardest first), then new cards in random order up
// to the daily new-card limit. The combined set is capped at
// MaxSessionCards and shuffled to avoid positional bias.
//
// An empty result means nothing to review; it is not an error.
func (e *Engine) SelectCards(ctx context.Context, collectionID string, direction domain.Direction, items []domain.Item) ([]domain.ReviewCard, error) {
	cards, err := e.ensureCards(ctx, collectionID, direction, items)
	if err != nil {
		return nil, err
	}

	settings, err := e.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := e.now()

	var due, fresh []domain.ReviewCard
	for _, c := range cards {
		switch {
		case c.IsDue(now):
			due = append(due, c)
		case c.IsNew():
			fresh = append(fresh, c)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		overdueI := now - due[i].NextReviewDate
		overdueJ := now - due[j].NextReviewDate
		if overdueI != overdueJ {
			return overdueI > overdueJ
		}
		return due[i].EaseFactor < due[j].EaseFactor
	})

	e.shuffle(fresh)

	selected := due
	newLimit := settings.NewCardsPerDay
	if remaining := MaxSessionCards - len(selected); newLimit > remaining {
		newLimit = remaining
	}
	if newLimit > 0 {
		if newLimit > len(fresh) {
			newLimit = len(fresh)
		}
		selected = append(selected, fresh[:newLimit]...)
	}

	if len(selected) > MaxSessionCards {
		selected = selected[:MaxSessionCards]
	}
	e.shuffle(selected)
	return selected, nil
}

// ensureCards lazily creates review cards for items that lack one, then
// returns the card set for the pair. Cards whose item has since been
// removed from the collection are left out: they keep their persisted
// schedule but are never presented.
func (e *Engine) ensureCards(ctx context.Context, collectionID string, direction domain.Direction, items []domain.Item) ([]domain.ReviewCard, error) {
	existing, err := e.store.GetReviewCards(ctx, collectionID, direction)
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(items))
	for _, item := range items {
		want[item.ID] = true
	}

	cards := make([]domain.ReviewCard, 0, len(items))
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c.ItemID] = true
		if want[c.ItemID] {
			cards = append(cards, c)
		}
	}

	var created []domain.ReviewCard
	for _, item := range items {
		if !have[item.ID] {
			created = append(created, domain.NewReviewCard(collectionID, item.ID, direction))
		}
	}

	if len(created) > 0 {
		if err := e.store.BatchUpsertReviewCards(ctx, created); err != nil {
			return nil, err
		}
	}

	return append(cards, created...), nil
}

// ApplyGrade runs one review through the scheduler and persists the
// updated card. quality is clamped to [0,5]. The card must already exist.
func (e *Engine) ApplyGrade(ctx context.Context, card domain.ReviewCard, quality int) (domain.ReviewCard, error) {
	if _, err := e.store.GetReviewCard(ctx, card.ID); err != nil {
		return domain.ReviewCard{}, fmt.Errorf("cannot grade: %w", err)
	}

	quality = sm2.Clamp(quality)
	now := e.now()
	next := sm2.Next(quality, sm2.State{
		EaseFactor:  card.EaseFactor,
		Interval:    card.Interval,
		Repetitions: card.Repetitions,
	}, now)

	card.EaseFactor = next.EaseFactor
	card.Interval = next.Interval
	card.Repetitions = next.Repetitions
	card.NextReviewDate = next.NextReviewDate
	card.LastReviewedAt = now
	if quality >= sm2.PassThreshold {
		card.CorrectCount++
	} else {
		card.IncorrectCount++
	}

	if err := e.store.UpsertReviewCard(ctx, card); err != nil {
		return domain.ReviewCard{}, err
	}
	return card, nil
}

func (e *Engine) shuffle(cards []domain.ReviewCard) {
	e.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
