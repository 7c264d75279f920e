// Package progress derives per-collection and global study statistics
// from review cards and session records. It never mutates state.
package progress

import (
	"context"
	"time"

	"github.com/justvibes99/enumerate/internal/domain"
	"github.com/justvibes99/enumerate/internal/store"
)

// Aggregator reads cards and sessions from the store and computes
// derived statistics on demand.
type Aggregator struct {
	store *store.Store
	now   func() time.Time
}

// New creates an aggregator bound to the given store.
func New(s *store.Store) *Aggregator {
	return &Aggregator{store: s, now: time.Now}
}

// Global holds store-wide statistics.
type Global struct {
	MasteredCount int `json:"masteredCount"`
	DueCount      int `json:"dueCount"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// SetProgress computes the derived progress record for one collection.
// Classification counts forward-direction cards: never reviewed is new,
// reviewed with interval >= 21 days is mastered, otherwise learning.
func (a *Aggregator) SetProgress(ctx context.Context, collectionID string) (domain.SetProgress, error) {
	collection, err := a.store.GetCollection(ctx, collectionID)
	if err != nil {
		return domain.SetProgress{}, err
	}

	cards, err := a.store.GetReviewCards(ctx, collectionID, domain.Forward)
	if err != nil {
		return domain.SetProgress{}, err
	}

	p := domain.SetProgress{
		CollectionID: collectionID,
		TotalItems:   len(collection.Items),
	}
	for _, c := range cards {
		if c.LastReviewedAt > p.LastStudiedAt {
			p.LastStudiedAt = c.LastReviewedAt
		}
		if c.IsNew() {
			continue
		}
		if c.Interval >= domain.MasteryInterval {
			p.MasteredCount++
		} else {
			p.LearningCount++
		}
	}
	p.NewCount = p.TotalItems - p.MasteredCount - p.LearningCount
	if p.NewCount < 0 {
		p.NewCount = 0
	}

	sessions, err := a.store.SessionsByCollection(ctx, collectionID)
	if err != nil {
		return domain.SetProgress{}, err
	}
	p.CurrentStreak, p.LongestStreak = Streaks(sessions, a.now())

	return p, nil
}

// GlobalProgress computes statistics across every collection.
func (a *Aggregator) GlobalProgress(ctx context.Context) (Global, error) {
	var g Global

	cards, err := a.store.AllReviewCards(ctx)
	if err != nil {
		return g, err
	}
	for _, c := range cards {
		if !c.IsNew() && c.Interval >= domain.MasteryInterval {
			g.MasteredCount++
		}
	}

	now := a.now()
	g.DueCount, err = a.store.CountDueCards(ctx, now.UnixMilli())
	if err != nil {
		return g, err
	}

	sessions, err := a.store.AllSessions(ctx)
	if err != nil {
		return g, err
	}
	g.CurrentStreak, g.LongestStreak = Streaks(sessions, now)

	return g, nil
}

// Streaks computes the current and longest study streaks from session
// records, evaluated at the given instant. A day counts as studied when
// any session completed on it, in the instant's time zone. The current
// streak is zero unless the most recent study day is today or yesterday;
// from there it counts consecutive studied days backward. The longest
// streak is the maximal run of consecutive studied days overall.
func Streaks(sessions []domain.QuizSession, now time.Time) (current, longest int) {
	loc := now.Location()

	days := make(map[string]bool)
	for _, s := range sessions {
		if s.CompletedAt > 0 {
			days[dayKey(time.UnixMilli(s.CompletedAt).In(loc))] = true
		}
	}
	if len(days) == 0 {
		return 0, 0
	}

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	var anchor time.Time
	switch {
	case days[dayKey(today)]:
		anchor = today
	case days[dayKey(yesterday)]:
		anchor = yesterday
	}
	if !anchor.IsZero() {
		for days[dayKey(anchor)] {
			current++
			anchor = anchor.AddDate(0, 0, -1)
		}
	}

	// Longest: walk each studied day that starts a run.
	for key := range days {
		day, err := time.ParseInLocation("2006-01-02", key, loc)
		if err != nil {
			continue
		}
		if days[dayKey(day.AddDate(0, 0, -1))] {
			continue // not the start of a run
		}
		run := 0
		for days[dayKey(day)] {
			run++
			day = day.AddDate(0, 0, 1)
		}
		if run > longest {
			longest = run
		}
	}

	return current, longest
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
